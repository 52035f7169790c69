package restapi

import (
	"github.com/andreyxaxa/Image-Gallery/config"
	_ "github.com/andreyxaxa/Image-Gallery/docs" // swagger docs
	v1 "github.com/andreyxaxa/Image-Gallery/internal/controller/restapi/v1"
	"github.com/andreyxaxa/Image-Gallery/internal/usecase"
	"github.com/andreyxaxa/Image-Gallery/pkg/logger"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
)

// @title Image gallery
// @version 1.0.0
// @host localhost:5000
// @BasePath /
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	img usecase.ImageUseCase,
	sub usecase.SubscriptionUseCase,
	cons usecase.ConsistencyUseCase,
	inst usecase.InstanceUseCase,
	l logger.Interface,
) {
	// Middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())

	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Routers
	v1.NewRoutes(app, img, sub, cons, inst, l)
}
