package lambda

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Image-Gallery/pkg/types/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

type API interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// FunctionInvoker calls a deployed function synchronously with an empty payload.
type FunctionInvoker struct {
	client       API
	functionName string
}

func NewFunctionInvoker(client API, functionName string) *FunctionInvoker {
	return &FunctionInvoker{
		client:       client,
		functionName: functionName,
	}
}

// Invoke returns the raw response payload of the function.
func (i *FunctionInvoker) Invoke(ctx context.Context) ([]byte, error) {
	if i.functionName == "" {
		return nil, fmt.Errorf("FunctionInvoker - Invoke: %w", errs.ErrFunctionNotConfigured)
	}

	out, err := i.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(i.functionName),
		InvocationType: types.InvocationTypeRequestResponse,
	})
	if err != nil {
		return nil, fmt.Errorf("FunctionInvoker - Invoke - i.client.Invoke: %w", err)
	}

	if out.FunctionError != nil {
		return nil, fmt.Errorf("FunctionInvoker - Invoke - function error %q: %s", aws.ToString(out.FunctionError), out.Payload)
	}

	return out.Payload, nil
}
