package infrastructure

import (
	"context"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
)

type (
	// EventsSender enqueues upload events for the notification worker.
	EventsSender interface {
		SendUploadEvent(ctx context.Context, event entity.UploadEvent) error
		Close() error
	}

	TopicPublisher interface {
		Publish(ctx context.Context, n entity.Notification) (string, error)
	}

	SubscriptionManager interface {
		Subscribe(ctx context.Context, email string) (string, error)
		Unsubscribe(ctx context.Context, subscriptionARN string) error
	}

	ConsistencyInvoker interface {
		Invoke(ctx context.Context) ([]byte, error)
	}

	InstanceMetadataProvider interface {
		InstanceMetadata(ctx context.Context) (entity.InstanceMetadata, error)
	}
)
