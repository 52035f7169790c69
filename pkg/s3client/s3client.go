package s3client

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
)

type S3Client struct {
	connAttempts int
	connTimeout  time.Duration

	bucket       string
	usePathStyle bool

	Client *s3.Client
}

func New(ctx context.Context, cfg aws.Config, bucket string, opts ...Option) (*S3Client, error) {
	s3c := &S3Client{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		bucket:       bucket,
	}

	for _, opt := range opts {
		opt(s3c)
	}

	s3c.Client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = s3c.usePathStyle
	})

	var err error
	for s3c.connAttempts > 0 {
		err = s3c.ping(ctx)
		if err == nil {
			break
		}

		log.Printf("S3 is trying to connect, attempts left: %d", s3c.connAttempts)

		time.Sleep(s3c.connTimeout)

		s3c.connAttempts--
	}

	if err != nil {
		return nil, fmt.Errorf("S3Client - New - connAttempts == 0: %w", err)
	}

	return s3c, nil
}

// ping checks that the configured bucket is reachable with the resolved credentials.
func (s *S3Client) ping(ctx context.Context) error {
	_, err := s.Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return fmt.Errorf("S3Client - s.Client.HeadBucket: %w", err)
	}

	return nil
}
