package image

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/andreyxaxa/Image-Gallery/internal/infrastructure"
	"github.com/andreyxaxa/Image-Gallery/internal/repo"
	"github.com/andreyxaxa/Image-Gallery/pkg/logger"
)

const keyPrefix = "images/"

type ImageUseCase struct {
	imageRepo    repo.ImageRepo
	metadataRepo repo.ImageMetadataRepo
	events       infrastructure.EventsSender

	now    func() time.Time
	logger logger.Interface
}

func New(
	imageRepo repo.ImageRepo,
	metadataRepo repo.ImageMetadataRepo,
	events infrastructure.EventsSender,
	l logger.Interface,
) *ImageUseCase {
	return &ImageUseCase{
		imageRepo:    imageRepo,
		metadataRepo: metadataRepo,
		events:       events,
		now:          time.Now,
		logger:       l,
	}
}

// ObjectKey is the object store key of an image.
func ObjectKey(name string) string {
	return keyPrefix + name
}

// Extension returns the lower-cased text after the last dot, or "" when the name has none.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}

	return strings.ToLower(name[i+1:])
}

// Upload writes the object, then the row, then the event. The steps are independent:
// a failure after the object write leaves the object in place.
func (uc *ImageUseCase) Upload(
	ctx context.Context,
	name string,
	data io.Reader,
	contentType string,
	size int64,
) (entity.ImageMetadata, error) {
	key := ObjectKey(name)
	meta := entity.ImageMetadata{
		Name:      name,
		SizeBytes: size,
		Extension: Extension(name),
	}

	// 1. кладём объект в хранилище (перезапись допустима)
	err := uc.imageRepo.Upload(ctx, key, data, contentType, size)
	if err != nil {
		return entity.ImageMetadata{}, fmt.Errorf("ImageUseCase - Upload - uc.imageRepo.Upload: %w", err)
	}

	// 2. пишем метаданные, объект при ошибке не откатываем
	err = uc.metadataRepo.Create(ctx, meta)
	if err != nil {
		return entity.ImageMetadata{}, fmt.Errorf("ImageUseCase - Upload - uc.metadataRepo.Create: %w", err)
	}

	// 3. событие для воркера уведомлений
	event := entity.UploadEvent{
		ImageName:     meta.Name,
		FileSize:      meta.SizeBytes,
		FileExtension: meta.Extension,
		Timestamp:     uc.now().UTC().Format(time.RFC3339),
		S3Key:         key,
	}

	err = uc.events.SendUploadEvent(ctx, event)
	if err != nil {
		return entity.ImageMetadata{}, fmt.Errorf("ImageUseCase - Upload - uc.events.SendUploadEvent: %w", err)
	}

	uc.logger.Info("ImageUseCase - Upload - image %s uploaded, %d bytes", name, size)

	return meta, nil
}

// Download does not consult the metadata table.
func (uc *ImageUseCase) Download(ctx context.Context, name string) (*entity.ImageObject, error) {
	obj, err := uc.imageRepo.Download(ctx, ObjectKey(name))
	if err != nil {
		return nil, fmt.Errorf("ImageUseCase - Download - uc.imageRepo.Download: %w", err)
	}

	return obj, nil
}

func (uc *ImageUseCase) GetMetadata(ctx context.Context, name string) (entity.ImageMetadata, error) {
	meta, err := uc.metadataRepo.GetByName(ctx, name)
	if err != nil {
		return entity.ImageMetadata{}, fmt.Errorf("ImageUseCase - GetMetadata - uc.metadataRepo.GetByName: %w", err)
	}

	return meta, nil
}

func (uc *ImageUseCase) GetRandomMetadata(ctx context.Context) (entity.ImageMetadata, error) {
	meta, err := uc.metadataRepo.GetRandom(ctx)
	if err != nil {
		return entity.ImageMetadata{}, fmt.Errorf("ImageUseCase - GetRandomMetadata - uc.metadataRepo.GetRandom: %w", err)
	}

	return meta, nil
}

func (uc *ImageUseCase) ListMetadata(ctx context.Context) ([]entity.ImageMetadata, error) {
	images, err := uc.metadataRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("ImageUseCase - ListMetadata - uc.metadataRepo.List: %w", err)
	}

	return images, nil
}

// Delete removes the row first. A missing row stops the call before the object store is touched.
func (uc *ImageUseCase) Delete(ctx context.Context, name string) error {
	// 1. удаляем строку метаданных
	err := uc.metadataRepo.Delete(ctx, name)
	if err != nil {
		return fmt.Errorf("ImageUseCase - Delete - uc.metadataRepo.Delete: %w", err)
	}

	// 2. удаляем объект, строка к этому моменту уже удалена
	err = uc.imageRepo.Delete(ctx, ObjectKey(name))
	if err != nil {
		return fmt.Errorf("ImageUseCase - Delete - uc.imageRepo.Delete: %w", err)
	}

	return nil
}
