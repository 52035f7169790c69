package minioclient

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
)

type MinIOClient struct {
	connAttempts int
	connTimeout  time.Duration
	useSSL       bool

	Bucket string
	Client *minio.Client
}

// New connects to the server and creates the bucket when it is missing.
func New(ctx context.Context, endpoint, accessKey, secretKey, bucket string, opts ...Option) (*MinIOClient, error) {
	mc := &MinIOClient{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		Bucket:       bucket,
	}

	for _, opt := range opts {
		opt(mc)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: mc.useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("MinIOClient - New - minio.New: %w", err)
	}

	mc.Client = client

	for mc.connAttempts > 0 {
		err = mc.ensureBucket(ctx)
		if err == nil {
			break
		}

		log.Printf("MinIO is trying to connect, attempts left: %d", mc.connAttempts)

		time.Sleep(mc.connTimeout)

		mc.connAttempts--
	}

	if err != nil {
		return nil, fmt.Errorf("MinIOClient - New - connAttempts == 0: %w", err)
	}

	return mc, nil
}

func (mc *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := mc.Client.BucketExists(ctx, mc.Bucket)
	if err != nil {
		return fmt.Errorf("MinIOClient - mc.Client.BucketExists: %w", err)
	}

	if exists {
		return nil
	}

	err = mc.Client.MakeBucket(ctx, mc.Bucket, minio.MakeBucketOptions{})
	if err != nil {
		return fmt.Errorf("MinIOClient - mc.Client.MakeBucket: %w", err)
	}

	log.Printf("MinIO: created bucket %q", mc.Bucket)

	return nil
}
