package persistent

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/andreyxaxa/Image-Gallery/pkg/s3client"
	"github.com/andreyxaxa/Image-Gallery/pkg/types/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3API is the part of *s3.Client used by ImageRepo.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type ImageRepo struct {
	client S3API
	bucket string
}

func NewImageRepo(s3c *s3client.S3Client, bucket string) *ImageRepo {
	return NewImageRepoWithClient(s3c.Client, bucket)
}

func NewImageRepoWithClient(client S3API, bucket string) *ImageRepo {
	return &ImageRepo{
		client: client,
		bucket: bucket,
	}
}

func (r *ImageRepo) Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          data,
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	_, err := r.client.PutObject(ctx, input)
	if err != nil {
		return fmt.Errorf("ImageRepo - Upload - r.client.PutObject: %w", err)
	}

	return nil
}

func (r *ImageRepo) Download(ctx context.Context, key string) (*entity.ImageObject, error) {
	result, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, fmt.Errorf("ImageRepo - Download: %w", errs.ErrObjectNotFound)
		}
		return nil, fmt.Errorf("ImageRepo - Download - r.client.GetObject: %w", err)
	}

	return &entity.ImageObject{
		Body:        result.Body,
		ContentType: aws.ToString(result.ContentType),
		Size:        aws.ToInt64(result.ContentLength),
	}, nil
}

func (r *ImageRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("ImageRepo - Delete - r.client.DeleteObject: %w", err)
	}

	return nil
}

func isS3NotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}

	return false
}
