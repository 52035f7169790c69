package consistency

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andreyxaxa/Image-Gallery/internal/infrastructure"
)

// UseCase proxies the externally deployed consistency check.
type UseCase struct {
	invoker infrastructure.ConsistencyInvoker
}

func New(invoker infrastructure.ConsistencyInvoker) *UseCase {
	return &UseCase{invoker: invoker}
}

// Check returns the function payload unmodified.
func (uc *UseCase) Check(ctx context.Context) (json.RawMessage, error) {
	payload, err := uc.invoker.Invoke(ctx)
	if err != nil {
		return nil, fmt.Errorf("ConsistencyUseCase - Check - uc.invoker.Invoke: %w", err)
	}

	if !json.Valid(payload) {
		return nil, fmt.Errorf("ConsistencyUseCase - Check - payload is not valid JSON: %q", payload)
	}

	return json.RawMessage(payload), nil
}
