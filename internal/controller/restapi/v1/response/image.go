package response

import (
	"time"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
)

type Upload struct {
	Success   bool   `json:"success" example:"true"`
	Message   string `json:"message" example:"Image uploaded successfully"`
	ImageName string `json:"image_name" example:"cat.png"`
	Size      int64  `json:"size" example:"1024"`
	Extension string `json:"extension" example:"png"`
}

type ImageMetadata struct {
	Name       string `json:"name" example:"cat.png"`
	SizeBytes  int64  `json:"size_bytes" example:"1024"`
	Extension  string `json:"extension" example:"png"`
	LastUpdate string `json:"last_update" example:"2024-05-01T12:00:00Z"`
}

type ImageList struct {
	Images []ImageMetadata `json:"images"`
	Total  int             `json:"total" example:"1"`
}

type Success struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Image cat.png deleted successfully"`
}

func NewImageMetadata(meta entity.ImageMetadata) ImageMetadata {
	return ImageMetadata{
		Name:       meta.Name,
		SizeBytes:  meta.SizeBytes,
		Extension:  meta.Extension,
		LastUpdate: meta.LastUpdate.Format(time.RFC3339),
	}
}

func NewImageList(images []entity.ImageMetadata) ImageList {
	list := ImageList{
		Images: make([]ImageMetadata, 0, len(images)),
		Total:  len(images),
	}

	for _, meta := range images {
		list.Images = append(list.Images, NewImageMetadata(meta))
	}

	return list
}
