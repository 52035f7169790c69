package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(_ context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

func TestEventProducer_SendUploadEvent(t *testing.T) {
	client := &fakeSQS{}
	p := NewEventProducer(client, "https://sqs.local/queue")

	event := entity.UploadEvent{
		ImageName:     "cat.png",
		FileSize:      1024,
		FileExtension: "png",
		Timestamp:     "2024-05-01T12:00:00Z",
		S3Key:         "images/cat.png",
	}

	require.NoError(t, p.SendUploadEvent(context.Background(), event))
	require.Len(t, client.inputs, 1)

	in := client.inputs[0]
	assert.Equal(t, "https://sqs.local/queue", aws.ToString(in.QueueUrl))

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(in.MessageBody)), &body))
	assert.Equal(t, "cat.png", body["image_name"])
	assert.EqualValues(t, 1024, body["file_size"])
	assert.Equal(t, "png", body["file_extension"])
	assert.Equal(t, "2024-05-01T12:00:00Z", body["timestamp"])
	assert.Equal(t, "images/cat.png", body["s3_key"])

	attr, ok := in.MessageAttributes[ExtensionAttribute]
	require.True(t, ok)
	assert.Equal(t, "String", aws.ToString(attr.DataType))
	assert.Equal(t, "png", aws.ToString(attr.StringValue))
}

func TestEventProducer_SendUploadEvent_NoExtension(t *testing.T) {
	client := &fakeSQS{}
	p := NewEventProducer(client, "q")

	require.NoError(t, p.SendUploadEvent(context.Background(), entity.UploadEvent{ImageName: "README"}))
	assert.Empty(t, client.inputs[0].MessageAttributes)
}

func TestEventProducer_SendUploadEvent_Error(t *testing.T) {
	boom := errors.New("throttled")
	p := NewEventProducer(&fakeSQS{err: boom}, "q")

	err := p.SendUploadEvent(context.Background(), entity.UploadEvent{ImageName: "cat.png"})
	require.ErrorIs(t, err, boom)
}
