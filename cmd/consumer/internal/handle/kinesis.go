package handle

//go:generate mockgen -source=kinesis.go -destination=mocks/mock_kinesis.go -package=mocks

import (
	"context"
	"log/slog"

	"github.com/ashitosh07/lambda/internal/pipeline"
	"github.com/ashitosh07/lambda/pkg/ctxkey"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

type BatchProcessor interface {
	ProcessBatch(ctx context.Context, records []pipeline.Record) pipeline.BatchSummary
}

type MetricsFlusher interface {
	Flush(ctx context.Context) error
}

// Kinesis returns the Lambda handler for one Kinesis batch. It always reports
// success: record failures are logged and never make the runtime redeliver
// the batch. flusher may be nil.
func Kinesis(processor BatchProcessor, flusher MetricsFlusher, logger *slog.Logger) func(ctx context.Context, event events.KinesisEvent) error {
	return func(ctx context.Context, event events.KinesisEvent) error {
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			ctx = ctxkey.SetRequestID(ctx, lc.AwsRequestID)
		}

		records := Records(ctx, event, logger)
		logger.InfoContext(ctx, "kinesis batch received", "records", len(event.Records), "accepted", len(records))

		processor.ProcessBatch(ctx, records)

		if flusher != nil {
			if err := flusher.Flush(ctx); err != nil {
				logger.WarnContext(ctx, "failed to flush metrics", "error", err)
			}
		}

		return nil
	}
}

// Records converts the event, dropping records that carry no data.
func Records(ctx context.Context, event events.KinesisEvent, logger *slog.Logger) []pipeline.Record {
	records := make([]pipeline.Record, 0, len(event.Records))
	for _, r := range event.Records {
		if len(r.Kinesis.Data) == 0 {
			logger.WarnContext(ctx, "kinesis record has no data",
				"event_id", r.EventID,
				"partition_key", r.Kinesis.PartitionKey,
				"sequence_number", r.Kinesis.SequenceNumber,
			)
			continue
		}
		records = append(records, pipeline.Record{
			PartitionKey:   r.Kinesis.PartitionKey,
			SequenceNumber: r.Kinesis.SequenceNumber,
			Data:           r.Kinesis.Data,
		})
	}
	return records
}
