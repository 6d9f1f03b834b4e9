package cfg

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type GeneralConfig struct {
	AppConfig      AppConfig      `env-prefix:"APP_"`
	AWSConfig      AWSConfig      `env-prefix:"AWS_"`
	AuditConfig    AuditConfig    `env-prefix:"AUDIT_"`
	UpstreamConfig UpstreamConfig `env-prefix:"UPSTREAM_"`
	StreamConfig   StreamConfig   `env-prefix:"STREAM_"`
	MetricsConfig  MetricsConfig  `env-prefix:"METRICS_"`
}

type AppConfig struct {
	EntityFamily string `env:"ENTITY_FAMILY" env-default:"product"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info"`
	// DefaultsFile is the lambda tools defaults file whose Values section
	// fills settings the environment leaves empty.
	DefaultsFile string `env:"DEFAULTS_FILE" env-default:"aws-lambda-tools-defaults.json"`
}

type AWSConfig struct {
	Region          string `env:"REGION" env-default:"us-east-1"`
	Endpoint        string `env:"ENDPOINT_URL"` // Optional: for LocalStack
	AccessKeyID     string `env:"STATIC_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"STATIC_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `env:"S3_USE_PATH_STYLE" env-default:"false"`
}

type AuditConfig struct {
	Backend   string        `env:"BACKEND" env-default:"dynamodb"`
	TableName string        `env:"TABLE_NAME"`
	Bucket    string        `env:"BUCKET"`
	Directory string        `env:"DIRECTORY" env-default:"tmp"`
	Timeout   time.Duration `env:"TIMEOUT" env-default:"5s"`
}

type UpstreamConfig struct {
	APIKeyName   string        `env:"API_KEY_NAME"`
	APIKeyValue  string        `env:"API_KEY_VALUE"`
	PostEndpoint string        `env:"POST_ENDPOINT"`
	PutEndpoint  string        `env:"PUT_ENDPOINT"`
	Timeout      time.Duration `env:"TIMEOUT" env-default:"10s"`

	RetryEnabled     bool          `env:"RETRY_ENABLED" env-default:"false"`
	RetryMaxAttempts int           `env:"RETRY_MAX_ATTEMPTS" env-default:"3"`
	RetryInitial     time.Duration `env:"RETRY_INITIAL_INTERVAL" env-default:"200ms"`
	RetryMaxInterval time.Duration `env:"RETRY_MAX_INTERVAL" env-default:"2s"`
}

type StreamConfig struct {
	Name         string `env:"NAME"`
	PartitionKey string `env:"PARTITION_KEY"`
}

type MetricsConfig struct {
	PushgatewayURL string `env:"PUSHGATEWAY_URL"`
	Job            string `env:"JOB" env-default:"aml-stream-consumer"`
}

// lambdaDefaults mirrors the Values section of aws-lambda-tools-defaults.json.
type lambdaDefaults struct {
	Values struct {
		DynamoDBTableName string `json:"DynamoDBTableName"`
		APIKey            string `json:"APIKey"`
		APIValue          string `json:"APIValue"`
		PostEndpoint      string `json:"PostEndpoint"`
		PutEndpoint       string `json:"PutEndpoint"`
		StreamName        string `json:"StreamName"`
		PartitionKey      string `json:"PartitionKey"`
	} `json:"Values"`
}

// Load reads the environment and then the defaults file. Unset values stay
// empty: the component that needs one reports the problem when first used.
func Load() (*GeneralConfig, error) {
	conf := &GeneralConfig{}
	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if conf.AppConfig.DefaultsFile == "" {
		return conf, nil
	}
	if err := conf.applyDefaultsFile(conf.AppConfig.DefaultsFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("lambda defaults file not found", "path", conf.AppConfig.DefaultsFile)
		} else {
			slog.Warn("failed to load lambda defaults file", "path", conf.AppConfig.DefaultsFile, "error", err)
		}
	}

	return conf, nil
}

func (c *GeneralConfig) applyDefaultsFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	var defaults lambdaDefaults
	if err := cleanenv.ReadConfig(path, &defaults); err != nil {
		return err
	}

	v := defaults.Values
	fill(&c.AuditConfig.TableName, v.DynamoDBTableName)
	fill(&c.UpstreamConfig.APIKeyName, v.APIKey)
	fill(&c.UpstreamConfig.APIKeyValue, v.APIValue)
	fill(&c.UpstreamConfig.PostEndpoint, v.PostEndpoint)
	fill(&c.UpstreamConfig.PutEndpoint, v.PutEndpoint)
	fill(&c.StreamConfig.Name, v.StreamName)
	fill(&c.StreamConfig.PartitionKey, v.PartitionKey)

	return nil
}

func fill(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
