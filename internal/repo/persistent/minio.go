package persistent

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/andreyxaxa/Image-Gallery/pkg/minioclient"
	"github.com/andreyxaxa/Image-Gallery/pkg/types/errs"
	"github.com/minio/minio-go/v7"
)

// MinIOImageRepo stores images in any S3-compatible server reachable through minio-go.
type MinIOImageRepo struct {
	*minioclient.MinIOClient
}

func NewMinIOImageRepo(mc *minioclient.MinIOClient) *MinIOImageRepo {
	return &MinIOImageRepo{mc}
}

func (r *MinIOImageRepo) Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error {
	_, err := r.Client.PutObject(ctx, r.Bucket, key, data, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("MinIOImageRepo - Upload - r.Client.PutObject: %w", err)
	}

	return nil
}

func (r *MinIOImageRepo) Download(ctx context.Context, key string) (*entity.ImageObject, error) {
	obj, err := r.Client.GetObject(ctx, r.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("MinIOImageRepo - Download - r.Client.GetObject: %w", err)
	}

	// GetObject is lazy, Stat performs the request.
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		if isMinIONotFound(err) {
			return nil, fmt.Errorf("MinIOImageRepo - Download: %w", errs.ErrObjectNotFound)
		}
		return nil, fmt.Errorf("MinIOImageRepo - Download - obj.Stat: %w", err)
	}

	return &entity.ImageObject{
		Body:        obj,
		ContentType: info.ContentType,
		Size:        info.Size,
	}, nil
}

func (r *MinIOImageRepo) Delete(ctx context.Context, key string) error {
	err := r.Client.RemoveObject(ctx, r.Bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("MinIOImageRepo - Delete - r.Client.RemoveObject: %w", err)
	}

	return nil
}

func isMinIONotFound(err error) bool {
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}

	switch resp.Code {
	case "NoSuchKey", "NotFound":
		return true
	}

	return false
}
