package entity

import (
	"io"
	"time"
)

// ImageMetadata is one row of the image_metadata table.
type ImageMetadata struct {
	Name       string    `json:"name"`
	SizeBytes  int64     `json:"size_bytes"`
	Extension  string    `json:"extension"`
	LastUpdate time.Time `json:"last_update"`
}

// ImageObject is a stored object opened for reading. The caller closes Body.
type ImageObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}
