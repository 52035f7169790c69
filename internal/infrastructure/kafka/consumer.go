package kafka

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Image-Gallery/pkg/kafka/consumer"
	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventConsumer hands out upload events one at a time, the caller commits after handling.
type EventConsumer struct {
	reader messageReader
}

func NewEventConsumer(c *consumer.Consumer) *EventConsumer {
	return &EventConsumer{c.Reader}
}

func (ec *EventConsumer) ReadEvent(ctx context.Context) (kafka.Message, error) {
	msg, err := ec.reader.FetchMessage(ctx)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("EventConsumer - ReadEvent - ec.reader.FetchMessage: %w", err)
	}

	return msg, nil
}

func (ec *EventConsumer) CommitEvent(ctx context.Context, event kafka.Message) error {
	err := ec.reader.CommitMessages(ctx, event)
	if err != nil {
		return fmt.Errorf("EventConsumer - CommitEvent - ec.reader.CommitMessages: %w", err)
	}

	return nil
}

func (ec *EventConsumer) Close() error {
	err := ec.reader.Close()
	if err != nil {
		return fmt.Errorf("EventConsumer - Close: %w", err)
	}

	return nil
}
