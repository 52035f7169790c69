package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andreyxaxa/Image-Gallery/config"
	kafkactrl "github.com/andreyxaxa/Image-Gallery/internal/controller/kafka"
	sqsctrl "github.com/andreyxaxa/Image-Gallery/internal/controller/sqs"
	infrakafka "github.com/andreyxaxa/Image-Gallery/internal/infrastructure/kafka"
	infrasns "github.com/andreyxaxa/Image-Gallery/internal/infrastructure/sns"
	"github.com/andreyxaxa/Image-Gallery/internal/usecase/notification"
	"github.com/andreyxaxa/Image-Gallery/pkg/awsconfig"
	"github.com/andreyxaxa/Image-Gallery/pkg/kafka/consumer"
	"github.com/andreyxaxa/Image-Gallery/pkg/logger"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// RunNotifier serves the SQS-triggered Lambda until the runtime stops the process.
func RunNotifier(cfg *config.Notifier) {
	ctx := context.Background()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Use-Case
	notificationUseCase, err := newNotificationUseCase(ctx, cfg, l)
	if err != nil {
		l.Fatal(fmt.Errorf("app - RunNotifier - newNotificationUseCase: %w", err))
	}

	// Lambda as Controller
	handler := sqsctrl.New(notificationUseCase, l)

	awslambda.Start(handler.Handle)
}

// RunKafkaNotifier runs the same notification logic as a long-lived Kafka consumer.
func RunKafkaNotifier(cfg *config.Notifier) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	if err := cfg.RequireKafka(); err != nil {
		l.Fatal(fmt.Errorf("app - RunKafkaNotifier - cfg.RequireKafka: %w", err))
	}

	// Use-Case
	notificationUseCase, err := newNotificationUseCase(ctx, cfg, l)
	if err != nil {
		l.Fatal(fmt.Errorf("app - RunKafkaNotifier - newNotificationUseCase: %w", err))
	}

	// Kafka Consumer
	kafkaConsumer, err := consumer.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic)
	if err != nil {
		l.Fatal(fmt.Errorf("app - RunKafkaNotifier - consumer.New: %w", err))
	}

	// Kafka as Controller
	kafkaController := kafkactrl.New(
		notificationUseCase,
		infrakafka.NewEventConsumer(kafkaConsumer),
		l,
		cfg.KafkaController.CommitTimeout,
		cfg.KafkaController.ProcessTimeout,
		cfg.KafkaController.RetryDelay,
	)

	err = kafkaController.Start(ctx)
	if err != nil {
		l.Fatal(fmt.Errorf("app - RunKafkaNotifier - kafkaController.Start: %w", err))
	}

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	s := <-interrupt
	l.Info("app - RunKafkaNotifier - signal: %s", s.String())

	// Shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.KafkaController.ShutdownTimeout)
	defer shutdownCancel()

	err = kafkaController.Shutdown(shutdownCtx)
	if err != nil {
		l.Error(fmt.Errorf("app - RunKafkaNotifier - kafkaController.Shutdown: %w", err))
	}
}

func newNotificationUseCase(ctx context.Context, cfg *config.Notifier, l logger.Interface) (*notification.UseCase, error) {
	loadCtx, loadCancel := context.WithTimeout(ctx, 10*time.Second)
	defer loadCancel()

	awsCfg, err := awsconfig.Load(loadCtx, awsOptions(cfg.AWS)...)
	if err != nil {
		return nil, fmt.Errorf("awsconfig.Load: %w", err)
	}

	topic := infrasns.NewTopic(sns.NewFromConfig(awsCfg), cfg.SNS.TopicARN)

	return notification.New(topic, l), nil
}
