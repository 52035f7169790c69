package awsconfig

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(context.Background(),
		Region("eu-central-1"),
		Endpoint("http://localhost:4566"),
		StaticCredentials("test", "secret"),
	)
	require.NoError(t, err)

	assert.Equal(t, "eu-central-1", cfg.Region)
	assert.Equal(t, "http://localhost:4566", aws.ToString(cfg.BaseEndpoint))

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}
