package instance

import (
	"context"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/andreyxaxa/Image-Gallery/internal/infrastructure"
	"github.com/andreyxaxa/Image-Gallery/pkg/logger"
)

type UseCase struct {
	provider infrastructure.InstanceMetadataProvider
	logger   logger.Interface
}

func New(provider infrastructure.InstanceMetadataProvider, l logger.Interface) *UseCase {
	return &UseCase{
		provider: provider,
		logger:   l,
	}
}

// Metadata never fails, unreachable metadata service yields "unknown" fields.
func (uc *UseCase) Metadata(ctx context.Context) entity.InstanceMetadata {
	md, err := uc.provider.InstanceMetadata(ctx)
	if err != nil {
		uc.logger.Error(err, "InstanceUseCase - Metadata - uc.provider.InstanceMetadata")

		return entity.UnknownInstance()
	}

	return md
}
