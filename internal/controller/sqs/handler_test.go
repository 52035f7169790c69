package sqs

import (
	"context"
	"errors"
	"testing"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})       {}
func (nopLogger) Warn(string, ...interface{})       {}
func (nopLogger) Error(interface{}, ...interface{}) {}
func (nopLogger) Fatal(interface{}, ...interface{}) {}

type fakeNotifier struct {
	published []entity.UploadEvent
	failOn    string
}

func (f *fakeNotifier) NotifyUpload(_ context.Context, event entity.UploadEvent) (string, error) {
	if event.ImageName == f.failOn {
		return "", errors.New("publish failed")
	}
	f.published = append(f.published, event)
	return "mid", nil
}

func record(id, body string) events.SQSMessage {
	return events.SQSMessage{MessageId: id, Body: body}
}

const (
	catMessage = `{"image_name":"cat.png","file_size":1024,"file_extension":"png","timestamp":"2024-05-01T12:00:00Z","s3_key":"images/cat.png"}`
	dogMessage = `{"image_name":"dog.jpg","file_size":2048,"file_extension":"jpg","timestamp":"2024-05-01T12:01:00Z","s3_key":"images/dog.jpg"}`
)

func TestHandler_Handle(t *testing.T) {
	n := &fakeNotifier{}
	h := New(n, nopLogger{})

	resp, err := h.Handle(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		record("1", catMessage),
		record("2", dogMessage),
	}})
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, `"Processed 2 messages"`, resp.Body)

	require.Len(t, n.published, 2)
	assert.Equal(t, "cat.png", n.published[0].ImageName)
	assert.Equal(t, "dog.jpg", n.published[1].ImageName)
}

func TestHandler_Handle_EmptyBatch(t *testing.T) {
	resp, err := New(&fakeNotifier{}, nopLogger{}).Handle(context.Background(), events.SQSEvent{})
	require.NoError(t, err)
	assert.Equal(t, `"Processed 0 messages"`, resp.Body)
}

func TestHandler_Handle_MalformedMessageAbortsBatch(t *testing.T) {
	n := &fakeNotifier{}
	h := New(n, nopLogger{})

	resp, err := h.Handle(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		record("1", catMessage),
		record("2", `{"image_name": "broken"`),
		record("3", dogMessage),
	}})
	require.Error(t, err)
	assert.Equal(t, Response{}, resp)

	require.Len(t, n.published, 1)
	assert.Equal(t, "cat.png", n.published[0].ImageName)
}

func TestHandler_Handle_PublishFailureAbortsBatch(t *testing.T) {
	n := &fakeNotifier{failOn: "cat.png"}
	h := New(n, nopLogger{})

	_, err := h.Handle(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		record("1", catMessage),
		record("2", dogMessage),
	}})
	require.Error(t, err)
	assert.Empty(t, n.published)
}
