package sqs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// ExtensionAttribute is the message attribute carrying the file extension.
const ExtensionAttribute = "Extension"

type API interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type EventProducer struct {
	client   API
	queueURL string
}

func NewEventProducer(client API, queueURL string) *EventProducer {
	return &EventProducer{
		client:   client,
		queueURL: queueURL,
	}
}

func (p *EventProducer) SendUploadEvent(ctx context.Context, event entity.UploadEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("EventProducer - SendUploadEvent - json.Marshal: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	}

	// SQS rejects empty attribute values.
	if event.FileExtension != "" {
		input.MessageAttributes = map[string]types.MessageAttributeValue{
			ExtensionAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.FileExtension),
			},
		}
	}

	_, err = p.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("EventProducer - SendUploadEvent - p.client.SendMessage: %w", err)
	}

	return nil
}

func (p *EventProducer) Close() error {
	return nil
}
