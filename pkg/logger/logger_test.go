package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	zl := zerolog.New(buf)
	return &Logger{logger: &zl}
}

func TestLogger_ErrorWithCallSite(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.Error(errors.New("boom"), "ImageUseCase - UploadImage")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "ImageUseCase - UploadImage", entry["where"])
}

func TestLogger_InfoFormatsArgs(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.Info("published message %s", "abc-123")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "published message abc-123", entry["message"])
}

func TestLogger_ErrorFormatsCallSite(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.Error(errors.New("bad json"), "sqs - Handler - message %s", "m-1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "sqs - Handler - message m-1", entry["where"])
	assert.NotContains(t, entry, "message")
}
