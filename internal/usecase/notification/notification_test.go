package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})       {}
func (nopLogger) Warn(string, ...interface{})       {}
func (nopLogger) Error(interface{}, ...interface{}) {}
func (nopLogger) Fatal(interface{}, ...interface{}) {}

type fakePublisher struct {
	published []entity.Notification
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, n entity.Notification) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.published = append(f.published, n)
	return "message-id", nil
}

func TestMessage(t *testing.T) {
	event := entity.UploadEvent{
		ImageName:     "cat.png",
		FileSize:      1536,
		FileExtension: "png",
		Timestamp:     "2024-05-01T12:00:00Z",
	}

	want := "Image Upload Notification\n" +
		"========================\n" +
		"\n" +
		"An image has been uploaded to the image repository.\n" +
		"\n" +
		"Image Details:\n" +
		"- Name: cat.png\n" +
		"- Size: 1536 bytes (1.50 KB)\n" +
		"- Extension: png\n" +
		"- Uploaded: 2024-05-01T12:00:00Z\n" +
		"\n" +
		"Thank you for using our image upload service!"

	assert.Equal(t, want, Message(event))
}

func TestMessage_KBRounding(t *testing.T) {
	assert.Contains(t, Message(entity.UploadEvent{FileSize: 1000}), "(0.98 KB)")
	assert.Contains(t, Message(entity.UploadEvent{FileSize: 0}), "(0.00 KB)")
}

func TestUseCase_NotifyUpload(t *testing.T) {
	pub := &fakePublisher{}
	uc := New(pub, nopLogger{})

	id, err := uc.NotifyUpload(context.Background(), entity.UploadEvent{
		ImageName:     "dog.jpg",
		FileSize:      2048,
		FileExtension: "jpg",
		Timestamp:     "2024-05-01T12:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "message-id", id)

	require.Len(t, pub.published, 1)
	assert.Equal(t, "Image Upload: dog.jpg", pub.published[0].Subject)
	assert.Equal(t, "jpg", pub.published[0].Extension)
	assert.Contains(t, pub.published[0].Message, "- Size: 2048 bytes (2.00 KB)")
}

func TestUseCase_NotifyUpload_Error(t *testing.T) {
	boom := errors.New("topic not found")

	_, err := New(&fakePublisher{err: boom}, nopLogger{}).NotifyUpload(context.Background(), entity.UploadEvent{ImageName: "a"})
	require.ErrorIs(t, err, boom)
}
