// Package awsconfig builds the shared aws.Config used by every AWS service client.
package awsconfig

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

type loader struct {
	region    string
	endpoint  string
	accessKey string
	secretKey string
}

type Option func(*loader)

// Region overrides the region resolved from the environment.
func Region(region string) Option {
	return func(l *loader) {
		l.region = region
	}
}

// Endpoint points every client at a single base endpoint, e.g. LocalStack.
func Endpoint(endpoint string) Option {
	return func(l *loader) {
		l.endpoint = endpoint
	}
}

// StaticCredentials replaces the default credential chain.
func StaticCredentials(accessKey, secretKey string) Option {
	return func(l *loader) {
		l.accessKey = accessKey
		l.secretKey = secretKey
	}
}

// Load resolves credentials and region through the SDK default chain unless overridden.
func Load(ctx context.Context, opts ...Option) (aws.Config, error) {
	l := &loader{}

	for _, opt := range opts {
		opt(l)
	}

	var loadOpts []func(*config.LoadOptions) error

	if l.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(l.region))
	}

	if l.endpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(l.endpoint))
	}

	if l.accessKey != "" && l.secretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(l.accessKey, l.secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("awsconfig - Load - config.LoadDefaultConfig: %w", err)
	}

	return cfg, nil
}
