package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageDriverS3    = "s3"
	StorageDriverMinIO = "minio"

	QueueDriverSQS   = "sqs"
	QueueDriverKafka = "kafka"
)

type (
	// Config is the HTTP API configuration.
	Config struct {
		HTTP        HTTP
		Log         Log
		AWS         AWS
		Storage     Storage
		MinIO       MinIO
		Queue       Queue
		SQS         SQS
		Kafka       Kafka
		SNS         SNS
		PG          PG
		Consistency Consistency
		Instance    Instance
		Swagger     Swagger
	}

	// Notifier is the queue worker configuration.
	Notifier struct {
		Log             Log
		AWS             AWS
		SNS             SNS
		Kafka           Kafka
		KafkaController KafkaController
	}

	HTTP struct {
		Port           string `env:"HTTP_PORT" envDefault:"5000"`
		UsePreforkMode bool   `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
		BodyLimit      int    `env:"HTTP_BODY_LIMIT" envDefault:"33554432"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	// AWS credentials come from the SDK default chain unless the static pair is set.
	AWS struct {
		Region    string `env:"AWS_REGION"`
		Endpoint  string `env:"AWS_ENDPOINT_URL"`
		AccessKey string `env:"AWS_STATIC_ACCESS_KEY_ID"`
		SecretKey string `env:"AWS_STATIC_SECRET_ACCESS_KEY"`
	}

	Storage struct {
		Driver       string `env:"STORAGE_DRIVER" envDefault:"s3"`
		Bucket       string `env:"S3_BUCKET_NAME,required"`
		UsePathStyle bool   `env:"S3_USE_PATH_STYLE" envDefault:"false"`
	}

	MinIO struct {
		Endpoint  string `env:"MINIO_ENDPOINT"`
		AccessKey string `env:"MINIO_ACCESS_KEY"`
		SecretKey string `env:"MINIO_SECRET_KEY"`
		UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	}

	Queue struct {
		Driver string `env:"QUEUE_DRIVER" envDefault:"sqs"`
	}

	SQS struct {
		QueueURL string `env:"SQS_QUEUE_URL"`
	}

	Kafka struct {
		Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
		Topic   string   `env:"KAFKA_TOPIC" envDefault:"image-uploads"`
		GroupID string   `env:"KAFKA_GROUP_ID" envDefault:"image-notifier"`
	}

	KafkaController struct {
		CommitTimeout   time.Duration `env:"KAFKA_CONTROLLER_COMMIT_TIMEOUT" envDefault:"2s"`
		ProcessTimeout  time.Duration `env:"KAFKA_CONTROLLER_PROCESS_TIMEOUT" envDefault:"15s"`
		ShutdownTimeout time.Duration `env:"KAFKA_CONTROLLER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
		RetryDelay      time.Duration `env:"KAFKA_CONTROLLER_RETRY_DELAY" envDefault:"5s"`
	}

	SNS struct {
		TopicARN string `env:"SNS_TOPIC_ARN,required"`
	}

	PG struct {
		Host     string `env:"DB_HOST,required"`
		Port     int    `env:"DB_PORT" envDefault:"5432"`
		User     string `env:"DB_USER" envDefault:"admin"`
		Password string `env:"DB_PASSWORD,required"`
		Name     string `env:"DB_NAME" envDefault:"imagedb"`
		SSLMode  string `env:"DB_SSL_MODE" envDefault:"require"`
		PoolMax  int    `env:"PG_POOL_MAX" envDefault:"4"`
		Migrate  bool   `env:"DB_MIGRATE" envDefault:"true"`
	}

	Consistency struct {
		FunctionName string `env:"CONSISTENCY_FUNCTION_NAME"`
	}

	Instance struct {
		MetadataTimeout time.Duration `env:"INSTANCE_METADATA_TIMEOUT" envDefault:"1s"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

func NewNotifier() (*Notifier, error) {
	cfg := &Notifier{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings that depend on the selected drivers.
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case StorageDriverS3:
	case StorageDriverMinIO:
		if c.MinIO.Endpoint == "" {
			errs = append(errs, errors.New("MINIO_ENDPOINT is required for minio storage driver"))
		}
		if c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "" {
			errs = append(errs, errors.New("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required for minio storage driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}

	switch c.Queue.Driver {
	case QueueDriverSQS:
		if c.SQS.QueueURL == "" {
			errs = append(errs, errors.New("SQS_QUEUE_URL is required for sqs queue driver"))
		}
	case QueueDriverKafka:
		errs = append(errs, c.Kafka.validate()...)
	default:
		errs = append(errs, fmt.Errorf("unknown QUEUE_DRIVER %q", c.Queue.Driver))
	}

	return errors.Join(errs...)
}

// RequireKafka is used by the Kafka-driven worker, the Lambda worker ignores Kafka settings.
func (c *Notifier) RequireKafka() error {
	if err := errors.Join(c.Kafka.validate()...); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	return nil
}

func (k Kafka) validate() []error {
	var errs []error

	if len(k.Brokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required for kafka queue driver"))
	}
	if k.Topic == "" {
		errs = append(errs, errors.New("KAFKA_TOPIC is required for kafka queue driver"))
	}

	return errs
}

// URL builds a postgres connection string with escaped credentials.
func (p PG) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:   "/" + p.Name,
	}

	q := url.Values{}
	q.Set("sslmode", p.SSLMode)
	u.RawQuery = q.Encode()

	return u.String()
}
