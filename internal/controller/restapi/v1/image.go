package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/andreyxaxa/Image-Gallery/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Image-Gallery/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// @Summary  	Upload image
// @Description Stores the file under images/{filename}, inserts a metadata row and enqueues an upload event
// @Tags 		images
// @Accept 		mpfd
// @Produce 	json
// @Param 		file formData file true "Image file"
// @Success 	201 {object} response.Upload
// @Failure 	400 {object} response.Error "No file provided or empty filename"
// @Failure 	500 {object} response.Error "Storage, database or queue failure"
// @Router 		/api/images/upload [post]
func (r *V1) uploadImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "No file provided")
	}

	if file.Filename == "" {
		return errorResponse(ctx, http.StatusBadRequest, "No file selected")
	}

	// 1. открываем файл
	fileReader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadImage - file.Open")

		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}
	defer fileReader.Close()

	// 2. загружаем
	meta, err := r.img.Upload(ctx.UserContext(), file.Filename, fileReader, file.Header.Get(fiber.HeaderContentType), file.Size)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadImage")

		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	// 3. ответ
	return ctx.Status(http.StatusCreated).JSON(response.Upload{
		Success:   true,
		Message:   "Image uploaded successfully",
		ImageName: meta.Name,
		Size:      meta.SizeBytes,
		Extension: meta.Extension,
	})
}

// @Summary 	Download image
// @Description Streams images/{name} from the object store as an attachment
// @Tags 		images
// @Produce 	octet-stream
// @Param 		name path string true "Image name"
// @Success 	200 {file} 	binary
// @Failure 	404 {object} response.Error "Image not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/api/images/download/{name} [get]
func (r *V1) downloadImage(ctx *fiber.Ctx) error {
	name := utils.CopyString(ctx.Params("name"))

	obj, err := r.img.Download(ctx.UserContext(), name)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, fmt.Sprintf("Image %s not found", name))
		}
		r.logger.Error(err, "restapi - v1 - downloadImage")

		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	ctx.Attachment(name)
	if obj.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, obj.ContentType)
	}

	size := -1
	if obj.Size > 0 {
		size = int(obj.Size)
	}

	return ctx.SendStream(obj.Body, size)
}

// @Summary 	Image metadata
// @Description Returns the metadata row with the exact image name
// @Tags 		metadata
// @Produce 	json
// @Param 		name path string true "Image name"
// @Success 	200 {object} response.ImageMetadata
// @Failure 	404 {object} response.Error "Image not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/api/images/metadata/{name} [get]
func (r *V1) imageMetadata(ctx *fiber.Ctx) error {
	name := utils.CopyString(ctx.Params("name"))

	meta, err := r.img.GetMetadata(ctx.UserContext(), name)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, fmt.Sprintf("Image %s not found", name))
		}
		r.logger.Error(err, "restapi - v1 - imageMetadata")

		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	return ctx.Status(http.StatusOK).JSON(response.NewImageMetadata(meta))
}

// @Summary 	Random image metadata
// @Description Returns one metadata row chosen uniformly at random
// @Tags 		metadata
// @Produce 	json
// @Success 	200 {object} response.ImageMetadata
// @Failure 	404 {object} response.Error "No images"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/api/images/metadata/random [get]
func (r *V1) randomImageMetadata(ctx *fiber.Ctx) error {
	meta, err := r.img.GetRandomMetadata(ctx.UserContext())
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "No images found")
		}
		r.logger.Error(err, "restapi - v1 - randomImageMetadata")

		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	return ctx.Status(http.StatusOK).JSON(response.NewImageMetadata(meta))
}

// @Summary 	List images
// @Description Returns every metadata row, most recently updated first
// @Tags 		metadata
// @Produce 	json
// @Success 	200 {object} response.ImageList
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/api/images [get]
func (r *V1) listImages(ctx *fiber.Ctx) error {
	images, err := r.img.ListMetadata(ctx.UserContext())
	if err != nil {
		r.logger.Error(err, "restapi - v1 - listImages")

		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	return ctx.Status(http.StatusOK).JSON(response.NewImageList(images))
}

// @Summary 	Delete image
// @Description Deletes the metadata row, then the stored object. Missing row leaves the object store untouched
// @Tags 		images
// @Produce 	json
// @Param		name path string true "Image name"
// @Success		200 {object} response.Success
// @Failure 	404 {object} response.Error "Image not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/api/images/{name} [delete]
func (r *V1) deleteImage(ctx *fiber.Ctx) error {
	name := utils.CopyString(ctx.Params("name"))

	err := r.img.Delete(ctx.UserContext(), name)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, fmt.Sprintf("Image %s not found", name))
		}
		r.logger.Error(err, "restapi - v1 - deleteImage")

		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	return ctx.Status(http.StatusOK).JSON(response.Success{
		Success: true,
		Message: fmt.Sprintf("Image %s deleted successfully", name),
	})
}
