package ec2meta

import (
	"context"
	"fmt"
	"time"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
)

const _defaultTimeout = time.Second

type API interface {
	GetInstanceIdentityDocument(
		ctx context.Context,
		params *imds.GetInstanceIdentityDocumentInput,
		optFns ...func(*imds.Options),
	) (*imds.GetInstanceIdentityDocumentOutput, error)
}

// Provider reads the identity document through IMDSv2, the client handles the session token.
type Provider struct {
	client  API
	timeout time.Duration
}

func NewProvider(client API, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = _defaultTimeout
	}

	return &Provider{
		client:  client,
		timeout: timeout,
	}
}

func (p *Provider) InstanceMetadata(ctx context.Context) (entity.InstanceMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.client.GetInstanceIdentityDocument(ctx, &imds.GetInstanceIdentityDocumentInput{})
	if err != nil {
		return entity.UnknownInstance(), fmt.Errorf("Provider - InstanceMetadata - p.client.GetInstanceIdentityDocument: %w", err)
	}

	return entity.InstanceMetadata{
		Region:           orUnknown(out.Region),
		AvailabilityZone: orUnknown(out.AvailabilityZone),
		InstanceID:       orUnknown(out.InstanceID),
		InstanceType:     orUnknown(out.InstanceType),
	}, nil
}

func orUnknown(v string) string {
	if v == "" {
		return entity.UnknownInstanceValue
	}

	return v
}
