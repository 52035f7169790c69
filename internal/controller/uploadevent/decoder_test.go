package uploadevent

import (
	"testing"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_Decode(t *testing.T) {
	d := NewDecoder()

	got, err := d.Decode([]byte(`{"image_name":"cat.png","file_size":1024,"file_extension":"png","timestamp":"2024-05-01T12:00:00Z","s3_key":"images/cat.png"}`))
	require.NoError(t, err)
	assert.Equal(t, entity.UploadEvent{
		ImageName:     "cat.png",
		FileSize:      1024,
		FileExtension: "png",
		Timestamp:     "2024-05-01T12:00:00Z",
		S3Key:         "images/cat.png",
	}, got)
}

func TestDecoder_Decode_ZeroValuesPresent(t *testing.T) {
	got, err := NewDecoder().Decode([]byte(`{"image_name":"README","file_size":0,"file_extension":"","timestamp":"t"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.FileSize)
	assert.Equal(t, "", got.FileExtension)
	assert.Equal(t, "", got.S3Key)
}

func TestDecoder_Decode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"image_name":`},
		{name: "missing image_name", body: `{"file_size":1,"file_extension":"png","timestamp":"t"}`},
		{name: "missing file_size", body: `{"image_name":"a","file_extension":"png","timestamp":"t"}`},
		{name: "missing file_extension", body: `{"image_name":"a","file_size":1,"timestamp":"t"}`},
		{name: "missing timestamp", body: `{"image_name":"a","file_size":1,"file_extension":"png"}`},
		{name: "negative size", body: `{"image_name":"a","file_size":-1,"file_extension":"png","timestamp":"t"}`},
		{name: "size not a number", body: `{"image_name":"a","file_size":"big","file_extension":"png","timestamp":"t"}`},
	}

	d := NewDecoder()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.Decode([]byte(tc.body))
			require.Error(t, err)
		})
	}
}
