package v1

import (
	"github.com/andreyxaxa/Image-Gallery/internal/usecase"
	"github.com/andreyxaxa/Image-Gallery/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func NewRoutes(
	app fiber.Router,
	img usecase.ImageUseCase,
	sub usecase.SubscriptionUseCase,
	cons usecase.ConsistencyUseCase,
	inst usecase.InstanceUseCase,
	l logger.Interface,
) {
	r := &V1{
		img:      img,
		sub:      sub,
		cons:     cons,
		inst:     inst,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   l,
	}

	// UI
	app.Get("/", r.showIndex)
	app.Get("/health", r.health)

	// API
	apiGroup := app.Group("/api")
	{
		apiGroup.Get("/metadata", r.instanceMetadata)

		apiGroup.Post("/images/upload", r.uploadImage)
		apiGroup.Get("/images/download/:name", r.downloadImage)
		// random must be registered before :name
		apiGroup.Get("/images/metadata/random", r.randomImageMetadata)
		apiGroup.Get("/images/metadata/:name", r.imageMetadata)
		apiGroup.Get("/images", r.listImages)
		apiGroup.Delete("/images/:name", r.deleteImage)

		apiGroup.Post("/subscribe", r.subscribe)
		apiGroup.Post("/unsubscribe", r.unsubscribe)

		apiGroup.Get("/check-consistency", r.checkConsistency)
	}
}
