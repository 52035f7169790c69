package v1

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/andreyxaxa/Image-Gallery/internal/controller/restapi/v1/response"
	"github.com/gofiber/fiber/v2"
)

var (
	//go:embed web/index.html
	webFiles embed.FS

	indexTemplate = template.Must(template.ParseFS(webFiles, "web/index.html"))
)

func (r *V1) showIndex(ctx *fiber.Ctx) error {
	md := r.inst.Metadata(ctx.UserContext())

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, md); err != nil {
		r.logger.Error(err, "restapi - v1 - showIndex")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with rendering page")
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	return ctx.Status(http.StatusOK).Send(buf.Bytes())
}

// @Summary 	Health check
// @Tags 		info
// @Produce 	json
// @Success 	200 {object} response.Health
// @Router 		/health [get]
func (r *V1) health(ctx *fiber.Ctx) error {
	return ctx.Status(http.StatusOK).JSON(response.Health{Status: "healthy"})
}

// @Summary 	Instance metadata
// @Description Region, availability zone, instance id and type of the serving host, "unknown" outside EC2
// @Tags 		info
// @Produce 	json
// @Success 	200 {object} entity.InstanceMetadata
// @Router 		/api/metadata [get]
func (r *V1) instanceMetadata(ctx *fiber.Ctx) error {
	return ctx.Status(http.StatusOK).JSON(r.inst.Metadata(ctx.UserContext()))
}
