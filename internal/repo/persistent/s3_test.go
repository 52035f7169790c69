package persistent

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andreyxaxa/Image-Gallery/pkg/types/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	put    *s3.PutObjectInput
	get    *s3.GetObjectInput
	del    *s3.DeleteObjectInput
	getOut *s3.GetObjectOutput
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = in
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.get = in
	if f.err != nil {
		return nil, f.err
	}
	return f.getOut, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.del = in
	return &s3.DeleteObjectOutput{}, f.err
}

func TestImageRepo_Upload(t *testing.T) {
	client := &fakeS3{}
	repo := NewImageRepoWithClient(client, "gallery")

	err := repo.Upload(context.Background(), "images/cat.png", strings.NewReader("data"), "image/png", 4)
	require.NoError(t, err)

	assert.Equal(t, "gallery", aws.ToString(client.put.Bucket))
	assert.Equal(t, "images/cat.png", aws.ToString(client.put.Key))
	assert.Equal(t, "image/png", aws.ToString(client.put.ContentType))
	assert.Equal(t, int64(4), aws.ToInt64(client.put.ContentLength))
}

func TestImageRepo_Download(t *testing.T) {
	client := &fakeS3{getOut: &s3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader("bytes")),
		ContentType:   aws.String("image/jpeg"),
		ContentLength: aws.Int64(5),
	}}
	repo := NewImageRepoWithClient(client, "gallery")

	obj, err := repo.Download(context.Background(), "images/dog.jpg")
	require.NoError(t, err)
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(data))
	assert.Equal(t, "image/jpeg", obj.ContentType)
	assert.Equal(t, int64(5), obj.Size)
	assert.Equal(t, "images/dog.jpg", aws.ToString(client.get.Key))
}

func TestImageRepo_Download_NotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "typed NoSuchKey", err: &types.NoSuchKey{}},
		{name: "generic api error", err: &smithy.GenericAPIError{Code: "NotFound"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewImageRepoWithClient(&fakeS3{err: tc.err}, "gallery")

			_, err := repo.Download(context.Background(), "images/missing.png")
			require.ErrorIs(t, err, errs.ErrObjectNotFound)
		})
	}
}

func TestImageRepo_Download_OtherError(t *testing.T) {
	boom := errors.New("access denied")
	repo := NewImageRepoWithClient(&fakeS3{err: boom}, "gallery")

	_, err := repo.Download(context.Background(), "images/cat.png")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestImageRepo_Delete(t *testing.T) {
	client := &fakeS3{}
	repo := NewImageRepoWithClient(client, "gallery")

	require.NoError(t, repo.Delete(context.Background(), "images/cat.png"))
	assert.Equal(t, "images/cat.png", aws.ToString(client.del.Key))
}
