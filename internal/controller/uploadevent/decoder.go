// Package uploadevent decodes queue messages produced by the upload endpoint.
package uploadevent

import (
	"encoding/json"
	"fmt"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/go-playground/validator/v10"
)

// payload uses pointers so that a present zero value is told apart from a missing key.
type payload struct {
	ImageName     *string `json:"image_name" validate:"required"`
	FileSize      *int64  `json:"file_size" validate:"required,gte=0"`
	FileExtension *string `json:"file_extension" validate:"required"`
	Timestamp     *string `json:"timestamp" validate:"required"`
	S3Key         string  `json:"s3_key"`
}

type Decoder struct {
	validate *validator.Validate
}

func NewDecoder() *Decoder {
	return &Decoder{validate: validator.New()}
}

func (d *Decoder) Decode(body []byte) (entity.UploadEvent, error) {
	var p payload

	err := json.Unmarshal(body, &p)
	if err != nil {
		return entity.UploadEvent{}, fmt.Errorf("Decoder - Decode - json.Unmarshal: %w", err)
	}

	err = d.validate.Struct(p)
	if err != nil {
		return entity.UploadEvent{}, fmt.Errorf("Decoder - Decode - d.validate.Struct: %w", err)
	}

	return entity.UploadEvent{
		ImageName:     *p.ImageName,
		FileSize:      *p.FileSize,
		FileExtension: *p.FileExtension,
		Timestamp:     *p.Timestamp,
		S3Key:         p.S3Key,
	}, nil
}
