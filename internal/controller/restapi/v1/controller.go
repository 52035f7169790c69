package v1

import (
	"github.com/andreyxaxa/Image-Gallery/internal/usecase"
	"github.com/andreyxaxa/Image-Gallery/pkg/logger"
	"github.com/go-playground/validator/v10"
)

type V1 struct {
	img  usecase.ImageUseCase
	sub  usecase.SubscriptionUseCase
	cons usecase.ConsistencyUseCase
	inst usecase.InstanceUseCase

	validate *validator.Validate
	logger   logger.Interface
}
