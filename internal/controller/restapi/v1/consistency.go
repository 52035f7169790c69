package v1

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// @Summary 	Check consistency
// @Description Invokes the consistency check function and returns its payload as is
// @Tags 		maintenance
// @Produce 	json
// @Success 	200 {object} object
// @Failure 	500 {object} response.Error "Invocation failed or function not configured"
// @Router 		/api/check-consistency [get]
func (r *V1) checkConsistency(ctx *fiber.Ctx) error {
	payload, err := r.cons.Check(ctx.UserContext())
	if err != nil {
		r.logger.Error(err, "restapi - v1 - checkConsistency")

		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return ctx.Status(http.StatusOK).Send(payload)
}
