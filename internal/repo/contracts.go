package repo

import (
	"context"
	"io"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
)

type (
	// ImageRepo is the object store holding raw image bytes.
	ImageRepo interface {
		Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error
		Download(ctx context.Context, key string) (*entity.ImageObject, error)
		Delete(ctx context.Context, key string) error
	}

	// ImageMetadataRepo is the relational store of image descriptions.
	ImageMetadataRepo interface {
		Create(ctx context.Context, meta entity.ImageMetadata) error
		GetByName(ctx context.Context, name string) (entity.ImageMetadata, error)
		GetRandom(ctx context.Context) (entity.ImageMetadata, error)
		List(ctx context.Context) ([]entity.ImageMetadata, error)
		Delete(ctx context.Context, name string) error
	}
)
