package usecase

import (
	"context"
	"encoding/json"
	"io"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
)

type (
	ImageUseCase interface {
		Upload(ctx context.Context, name string, data io.Reader, contentType string, size int64) (entity.ImageMetadata, error)
		Download(ctx context.Context, name string) (*entity.ImageObject, error)
		GetMetadata(ctx context.Context, name string) (entity.ImageMetadata, error)
		GetRandomMetadata(ctx context.Context) (entity.ImageMetadata, error)
		ListMetadata(ctx context.Context) ([]entity.ImageMetadata, error)
		Delete(ctx context.Context, name string) error
	}

	SubscriptionUseCase interface {
		Subscribe(ctx context.Context, email string) (string, error)
		Unsubscribe(ctx context.Context, subscriptionARN string) error
	}

	NotificationUseCase interface {
		NotifyUpload(ctx context.Context, event entity.UploadEvent) (string, error)
	}

	InstanceUseCase interface {
		Metadata(ctx context.Context) entity.InstanceMetadata
	}

	ConsistencyUseCase interface {
		Check(ctx context.Context) (json.RawMessage, error)
	}
)
