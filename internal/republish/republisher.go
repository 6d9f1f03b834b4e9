// Package republish re-emits one inbound payload onto the outbound stream,
// unchanged and in a single attempt.
package republish

//go:generate mockgen -source=republisher.go -destination=mocks/mock_republisher.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
)

type KinesisClient interface {
	PutRecord(ctx context.Context, params *kinesis.PutRecordInput, optFns ...func(*kinesis.Options)) (*kinesis.PutRecordOutput, error)
}

var (
	ErrEmptyPayload              = errors.New("payload is empty")
	ErrStreamNotConfigured       = errors.New("outbound stream name is not configured")
	ErrPartitionKeyNotConfigured = errors.New("outbound partition key is not configured")
)

type Republisher struct {
	stream       string
	partitionKey string
	client       KinesisClient
	logger       *slog.Logger
}

func NewRepublisher(awsCfg aws.Config, stream, partitionKey, endpoint string, logger *slog.Logger) *Republisher {
	var client *kinesis.Client
	if endpoint != "" {
		client = kinesis.NewFromConfig(awsCfg, func(o *kinesis.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	} else {
		client = kinesis.NewFromConfig(awsCfg)
	}

	return NewRepublisherWithClient(stream, partitionKey, client, logger)
}

func NewRepublisherWithClient(stream, partitionKey string, client KinesisClient, logger *slog.Logger) *Republisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Republisher{
		stream:       stream,
		partitionKey: partitionKey,
		client:       client,
		logger:       logger,
	}
}

func (r *Republisher) Republish(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		r.logger.ErrorContext(ctx, "republish rejected", "error", ErrEmptyPayload)
		return ErrEmptyPayload
	}
	if r.stream == "" {
		r.logger.ErrorContext(ctx, "republish failed", "error", ErrStreamNotConfigured)
		return ErrStreamNotConfigured
	}
	if r.partitionKey == "" {
		r.logger.ErrorContext(ctx, "republish failed", "stream", r.stream, "error", ErrPartitionKeyNotConfigured)
		return ErrPartitionKeyNotConfigured
	}

	out, err := r.client.PutRecord(ctx, &kinesis.PutRecordInput{
		StreamName:   aws.String(r.stream),
		PartitionKey: aws.String(r.partitionKey),
		Data:         payload,
	})
	if err != nil {
		err = fmt.Errorf("failed to put record into %s: %w", r.stream, err)
		r.logger.ErrorContext(ctx, "republish failed", "stream", r.stream, "error", err)
		return err
	}

	r.logger.InfoContext(ctx, "payload republished",
		"stream", r.stream,
		"bytes", len(payload),
		"shard_id", aws.ToString(out.ShardId),
		"sequence_number", aws.ToString(out.SequenceNumber),
	)
	return nil
}
