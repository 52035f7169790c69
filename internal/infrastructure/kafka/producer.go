package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/andreyxaxa/Image-Gallery/pkg/kafka/producer"
	"github.com/segmentio/kafka-go"
)

// ExtensionHeader mirrors the Extension attribute of the SQS driver.
const ExtensionHeader = "Extension"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type EventProducer struct {
	writer messageWriter
}

func NewEventProducer(p *producer.Producer) *EventProducer {
	return &EventProducer{p.Writer}
}

func (ep *EventProducer) SendUploadEvent(ctx context.Context, event entity.UploadEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("EventProducer - SendUploadEvent - json.Marshal: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.ImageName),
		Value: value,
		Headers: []kafka.Header{
			{Key: ExtensionHeader, Value: []byte(event.FileExtension)},
		},
	}

	err = ep.writer.WriteMessages(ctx, msg)
	if err != nil {
		return fmt.Errorf("EventProducer - SendUploadEvent - ep.writer.WriteMessages: %w", err)
	}

	return nil
}

func (ep *EventProducer) Close() error {
	err := ep.writer.Close()
	if err != nil {
		return fmt.Errorf("EventProducer - Close: %w", err)
	}

	return nil
}
