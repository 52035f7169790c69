package subscription

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Image-Gallery/internal/infrastructure"
)

// UseCase manages topic subscriptions. Nothing is stored locally.
type UseCase struct {
	topic infrastructure.SubscriptionManager
}

func New(topic infrastructure.SubscriptionManager) *UseCase {
	return &UseCase{topic: topic}
}

func (uc *UseCase) Subscribe(ctx context.Context, email string) (string, error) {
	arn, err := uc.topic.Subscribe(ctx, email)
	if err != nil {
		return "", fmt.Errorf("SubscriptionUseCase - Subscribe - uc.topic.Subscribe: %w", err)
	}

	return arn, nil
}

func (uc *UseCase) Unsubscribe(ctx context.Context, subscriptionARN string) error {
	err := uc.topic.Unsubscribe(ctx, subscriptionARN)
	if err != nil {
		return fmt.Errorf("SubscriptionUseCase - Unsubscribe - uc.topic.Unsubscribe: %w", err)
	}

	return nil
}
