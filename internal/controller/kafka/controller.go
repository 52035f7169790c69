package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andreyxaxa/Image-Gallery/internal/controller/uploadevent"
	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/andreyxaxa/Image-Gallery/internal/usecase"
	"github.com/andreyxaxa/Image-Gallery/pkg/logger"
	"github.com/segmentio/kafka-go"
)

type EventSource interface {
	ReadEvent(ctx context.Context) (kafka.Message, error)
	CommitEvent(ctx context.Context, event kafka.Message) error
	Close() error
}

// KafkaController feeds upload events to the notification use-case one message at a time.
// An offset is committed only after the notification was published.
type KafkaController struct {
	n       usecase.NotificationUseCase
	ec      EventSource
	decoder *uploadevent.Decoder
	logger  logger.Interface

	commitTimeout  time.Duration
	processTimeout time.Duration
	retryDelay     time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	started atomic.Bool
}

func New(
	n usecase.NotificationUseCase,
	ec EventSource,
	l logger.Interface,
	commitTimeout time.Duration,
	processTimeout time.Duration,
	retryDelay time.Duration,
) *KafkaController {
	return &KafkaController{
		n:              n,
		ec:             ec,
		decoder:        uploadevent.NewDecoder(),
		logger:         l,
		commitTimeout:  commitTimeout,
		processTimeout: processTimeout,
		retryDelay:     retryDelay,
	}
}

func (c *KafkaController) Start(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return fmt.Errorf("KafkaController - Start - controller already started")
	}

	c.ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(1)
	go c.run()

	return nil
}

func (c *KafkaController) run() {
	defer c.wg.Done()

	for {
		// 1. читаем из кафки
		event, err := c.ec.ReadEvent(c.ctx)
		if err != nil {
			if c.ctx.Err() != nil {
				return
			}
			c.logger.Error(err, "KafkaController - run - c.ec.ReadEvent")

			if !c.wait() {
				return
			}

			continue
		}

		// 2. обрабатываем, пока не получится или не остановят
		if !c.handle(event) {
			return
		}

		// 3. коммитим после успешной обработки
		commitCtx, commitCancel := context.WithTimeout(c.ctx, c.commitTimeout)
		err = c.ec.CommitEvent(commitCtx, event)
		commitCancel()
		if err != nil {
			c.logger.Error(err, "KafkaController - run - c.ec.CommitEvent")
		}
	}
}

// handle returns false when the controller is stopping and the event must stay uncommitted.
func (c *KafkaController) handle(event kafka.Message) bool {
	uploadEvent, err := c.decoder.Decode(event.Value)
	if err != nil {
		// повтор не поможет, коммитим и идём дальше
		c.logger.Error(err, "KafkaController - handle - c.decoder.Decode - offset %d", event.Offset)

		return true
	}

	for {
		err = c.process(uploadEvent)
		if err == nil {
			return true
		}

		c.logger.Error(err, "KafkaController - handle - c.process - offset %d", event.Offset)

		if !c.wait() {
			return false
		}
	}
}

// wait sleeps for retryDelay and reports false if the controller was stopped meanwhile.
func (c *KafkaController) wait() bool {
	select {
	case <-c.ctx.Done():
		return false
	case <-time.After(c.retryDelay):
		return true
	}
}

func (c *KafkaController) process(event entity.UploadEvent) error {
	processCtx, processCancel := context.WithTimeout(c.ctx, c.processTimeout)
	defer processCancel()

	_, err := c.n.NotifyUpload(processCtx, event)
	if err != nil {
		return fmt.Errorf("KafkaController - process - c.n.NotifyUpload: %w", err)
	}

	return nil
}

func (c *KafkaController) Shutdown(ctx context.Context) error {
	if !c.started.Load() {
		return nil
	}

	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})

	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return fmt.Errorf("KafkaController - Shutdown: %w", ctx.Err())
	}

	err := c.ec.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("KafkaController - Shutdown - c.ec.Close: %w", err)
	}

	return nil
}
