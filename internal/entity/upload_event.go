package entity

// UploadEvent is published to the queue once per successful upload.
type UploadEvent struct {
	ImageName     string `json:"image_name"`
	FileSize      int64  `json:"file_size"`
	FileExtension string `json:"file_extension"`
	Timestamp     string `json:"timestamp"`
	S3Key         string `json:"s3_key"`
}
