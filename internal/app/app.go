package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/andreyxaxa/Image-Gallery/config"
	"github.com/andreyxaxa/Image-Gallery/internal/controller/restapi"
	"github.com/andreyxaxa/Image-Gallery/internal/infrastructure"
	"github.com/andreyxaxa/Image-Gallery/internal/infrastructure/ec2meta"
	infrakafka "github.com/andreyxaxa/Image-Gallery/internal/infrastructure/kafka"
	infralambda "github.com/andreyxaxa/Image-Gallery/internal/infrastructure/lambda"
	infrasns "github.com/andreyxaxa/Image-Gallery/internal/infrastructure/sns"
	infrasqs "github.com/andreyxaxa/Image-Gallery/internal/infrastructure/sqs"
	"github.com/andreyxaxa/Image-Gallery/internal/repo"
	"github.com/andreyxaxa/Image-Gallery/internal/repo/persistent"
	"github.com/andreyxaxa/Image-Gallery/internal/usecase/consistency"
	"github.com/andreyxaxa/Image-Gallery/internal/usecase/image"
	"github.com/andreyxaxa/Image-Gallery/internal/usecase/instance"
	"github.com/andreyxaxa/Image-Gallery/internal/usecase/subscription"
	"github.com/andreyxaxa/Image-Gallery/pkg/awsconfig"
	"github.com/andreyxaxa/Image-Gallery/pkg/httpserver"
	"github.com/andreyxaxa/Image-Gallery/pkg/kafka/producer"
	"github.com/andreyxaxa/Image-Gallery/pkg/logger"
	"github.com/andreyxaxa/Image-Gallery/pkg/minioclient"
	"github.com/andreyxaxa/Image-Gallery/pkg/postgres"
	"github.com/andreyxaxa/Image-Gallery/pkg/s3client"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// AWS
	awsCfg, err := awsconfig.Load(ctx, awsOptions(cfg.AWS)...)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - awsconfig.Load: %w", err))
	}

	// Repository

	// object store
	imageRepo, err := newImageRepo(ctx, cfg, awsCfg)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newImageRepo: %w", err))
	}

	// postgres
	pg, err := postgres.New(cfg.PG.URL(), postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	if cfg.PG.Migrate {
		err = postgres.Migrate(cfg.PG.URL(), persistent.Migrations, persistent.MigrationsDir)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - postgres.Migrate: %w", err))
		}
	}

	// Infrastructure

	// queue
	eventsSender, err := newEventsSender(ctx, cfg, awsCfg)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newEventsSender: %w", err))
	}

	topic := infrasns.NewTopic(sns.NewFromConfig(awsCfg), cfg.SNS.TopicARN)

	// Use-Case
	imageUseCase := image.New(
		imageRepo,
		persistent.NewImageMetadataRepo(pg),
		eventsSender,
		l,
	)
	subscriptionUseCase := subscription.New(topic)
	consistencyUseCase := consistency.New(
		infralambda.NewFunctionInvoker(lambda.NewFromConfig(awsCfg), cfg.Consistency.FunctionName),
	)
	instanceUseCase := instance.New(
		ec2meta.NewProvider(imds.NewFromConfig(awsCfg), cfg.Instance.MetadataTimeout),
		l,
	)

	// HTTP Server
	httpServer := httpserver.New(l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.BodyLimit(cfg.HTTP.BodyLimit),
	)
	restapi.NewRouter(httpServer.App, cfg, imageUseCase, subscriptionUseCase, consistencyUseCase, instanceUseCase, l)

	// Start Components
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	err = eventsSender.Close()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - eventsSender.Close: %w", err))
	}
}

func awsOptions(cfg config.AWS) []awsconfig.Option {
	var opts []awsconfig.Option

	if cfg.Region != "" {
		opts = append(opts, awsconfig.Region(cfg.Region))
	}

	if cfg.Endpoint != "" {
		opts = append(opts, awsconfig.Endpoint(cfg.Endpoint))
	}

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.StaticCredentials(cfg.AccessKey, cfg.SecretKey))
	}

	return opts
}

func newImageRepo(ctx context.Context, cfg *config.Config, awsCfg aws.Config) (repo.ImageRepo, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMinIO:
		mc, err := minioclient.New(ctx,
			cfg.MinIO.Endpoint,
			cfg.MinIO.AccessKey,
			cfg.MinIO.SecretKey,
			cfg.Storage.Bucket,
			minioclient.UseSSL(cfg.MinIO.UseSSL),
		)
		if err != nil {
			return nil, fmt.Errorf("minioclient.New: %w", err)
		}

		return persistent.NewMinIOImageRepo(mc), nil
	default:
		s3c, err := s3client.New(ctx, awsCfg, cfg.Storage.Bucket, s3client.UsePathStyle(cfg.Storage.UsePathStyle))
		if err != nil {
			return nil, fmt.Errorf("s3client.New: %w", err)
		}

		return persistent.NewImageRepo(s3c, cfg.Storage.Bucket), nil
	}
}

func newEventsSender(ctx context.Context, cfg *config.Config, awsCfg aws.Config) (infrastructure.EventsSender, error) {
	switch cfg.Queue.Driver {
	case config.QueueDriverKafka:
		p, err := producer.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return nil, fmt.Errorf("producer.New: %w", err)
		}

		return infrakafka.NewEventProducer(p), nil
	default:
		return infrasqs.NewEventProducer(sqs.NewFromConfig(awsCfg), cfg.SQS.QueueURL), nil
	}
}
