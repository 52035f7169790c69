package notification

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/andreyxaxa/Image-Gallery/internal/infrastructure"
	"github.com/andreyxaxa/Image-Gallery/pkg/logger"
)

const messageTemplate = `Image Upload Notification
========================

An image has been uploaded to the image repository.

Image Details:
- Name: %s
- Size: %d bytes (%.2f KB)
- Extension: %s
- Uploaded: %s

Thank you for using our image upload service!`

type UseCase struct {
	topic  infrastructure.TopicPublisher
	logger logger.Interface
}

func New(topic infrastructure.TopicPublisher, l logger.Interface) *UseCase {
	return &UseCase{
		topic:  topic,
		logger: l,
	}
}

// Subject is the topic message subject for an uploaded image.
func Subject(imageName string) string {
	return "Image Upload: " + imageName
}

// Message renders the plaintext notification body.
func Message(event entity.UploadEvent) string {
	return fmt.Sprintf(messageTemplate,
		event.ImageName,
		event.FileSize,
		float64(event.FileSize)/1024,
		event.FileExtension,
		event.Timestamp,
	)
}

// NotifyUpload publishes one notification and returns the provider message id.
func (uc *UseCase) NotifyUpload(ctx context.Context, event entity.UploadEvent) (string, error) {
	uc.logger.Info("NotificationUseCase - NotifyUpload - processing image upload: %s", event.ImageName)

	id, err := uc.topic.Publish(ctx, entity.Notification{
		Subject:   Subject(event.ImageName),
		Message:   Message(event),
		Extension: event.FileExtension,
	})
	if err != nil {
		return "", fmt.Errorf("NotificationUseCase - NotifyUpload - uc.topic.Publish: %w", err)
	}

	uc.logger.Info("NotificationUseCase - NotifyUpload - published message: %s", id)

	return id, nil
}
