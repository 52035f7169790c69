package sqs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andreyxaxa/Image-Gallery/internal/controller/uploadevent"
	"github.com/andreyxaxa/Image-Gallery/internal/usecase"
	"github.com/andreyxaxa/Image-Gallery/pkg/logger"
	"github.com/aws/aws-lambda-go/events"
)

// Response is returned to the Lambda runtime when the whole batch succeeds.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type Handler struct {
	n       usecase.NotificationUseCase
	decoder *uploadevent.Decoder
	logger  logger.Interface
}

func New(n usecase.NotificationUseCase, l logger.Interface) *Handler {
	return &Handler{
		n:       n,
		decoder: uploadevent.NewDecoder(),
		logger:  l,
	}
}

// Handle processes records in order. The first failure aborts the batch and is
// returned to the runtime, so the whole batch becomes visible on the queue again.
func (h *Handler) Handle(ctx context.Context, event events.SQSEvent) (Response, error) {
	h.logger.Info("sqs - Handler - received %d messages", len(event.Records))

	for _, record := range event.Records {
		// 1. разбираем тело сообщения
		uploadEvent, err := h.decoder.Decode([]byte(record.Body))
		if err != nil {
			h.logger.Error(err, "sqs - Handler - h.decoder.Decode - message %s", record.MessageId)

			return Response{}, fmt.Errorf("Handler - Handle - h.decoder.Decode: %w", err)
		}

		// 2. публикуем уведомление
		_, err = h.n.NotifyUpload(ctx, uploadEvent)
		if err != nil {
			h.logger.Error(err, "sqs - Handler - h.n.NotifyUpload - message %s", record.MessageId)

			return Response{}, fmt.Errorf("Handler - Handle - h.n.NotifyUpload: %w", err)
		}
	}

	body, err := json.Marshal(fmt.Sprintf("Processed %d messages", len(event.Records)))
	if err != nil {
		return Response{}, fmt.Errorf("Handler - Handle - json.Marshal: %w", err)
	}

	return Response{
		StatusCode: 200,
		Body:       string(body),
	}, nil
}
