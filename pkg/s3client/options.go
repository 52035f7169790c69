package s3client

import "time"

type Option func(c *S3Client)

func ConnAttempts(attempts int) Option {
	return func(c *S3Client) {
		c.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *S3Client) {
		c.connTimeout = timeout
	}
}

// UsePathStyle is needed for S3-compatible endpoints such as LocalStack.
func UsePathStyle(use bool) Option {
	return func(c *S3Client) {
		c.usePathStyle = use
	}
}
