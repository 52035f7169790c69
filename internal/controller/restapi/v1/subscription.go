package v1

import (
	"net/http"

	"github.com/andreyxaxa/Image-Gallery/internal/controller/restapi/v1/request"
	"github.com/andreyxaxa/Image-Gallery/internal/controller/restapi/v1/response"
	"github.com/gofiber/fiber/v2"
)

// @Summary 	Subscribe
// @Description Subscribes an email address to upload notifications
// @Tags 		subscriptions
// @Accept 		json
// @Produce 	json
// @Param 		request body request.Subscribe true "Email"
// @Success 	201 {object} response.Subscribe
// @Failure 	400 {object} response.Error "Email required"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/api/subscribe [post]
func (r *V1) subscribe(ctx *fiber.Ctx) error {
	var body request.Subscribe

	// невалидное тело считаем пустым
	_ = ctx.BodyParser(&body)

	if err := r.validate.Struct(body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Email required")
	}

	arn, err := r.sub.Subscribe(ctx.UserContext(), body.Email)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - subscribe")

		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	return ctx.Status(http.StatusCreated).JSON(response.Subscribe{
		Success:         true,
		Message:         "Subscription request sent. Check your email to confirm.",
		SubscriptionARN: arn,
	})
}

// @Summary 	Unsubscribe
// @Description Removes a subscription by its ARN
// @Tags 		subscriptions
// @Accept 		json
// @Produce 	json
// @Param 		request body request.Unsubscribe true "Subscription ARN"
// @Success 	200 {object} response.Success
// @Failure 	400 {object} response.Error "Subscription ARN required"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/api/unsubscribe [post]
func (r *V1) unsubscribe(ctx *fiber.Ctx) error {
	var body request.Unsubscribe

	_ = ctx.BodyParser(&body)

	if err := r.validate.Struct(body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Subscription ARN required")
	}

	err := r.sub.Unsubscribe(ctx.UserContext(), body.SubscriptionARN)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - unsubscribe")

		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	return ctx.Status(http.StatusOK).JSON(response.Success{
		Success: true,
		Message: "Unsubscribed successfully",
	})
}
