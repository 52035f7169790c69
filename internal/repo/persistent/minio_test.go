package persistent

import (
	"errors"
	"fmt"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestIsMinIONotFound(t *testing.T) {
	assert.True(t, isMinIONotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, isMinIONotFound(fmt.Errorf("stat: %w", minio.ErrorResponse{Code: "NotFound"})))
	assert.False(t, isMinIONotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isMinIONotFound(errors.New("dial tcp: connection refused")))
}
