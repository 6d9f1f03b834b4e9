package handle

//go:generate mockgen -source=payload.go -destination=mocks/mock_payload.go -package=mocks

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ashitosh07/lambda/pkg/ctxkey"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

type PayloadRepublisher interface {
	Republish(ctx context.Context, payload []byte) error
}

// Payload forwards the raw invocation payload. A failed republish is logged
// and still reported as a success to the runtime.
func Payload(republisher PayloadRepublisher, logger *slog.Logger) func(ctx context.Context, payload json.RawMessage) error {
	return func(ctx context.Context, payload json.RawMessage) error {
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			ctx = ctxkey.SetRequestID(ctx, lc.AwsRequestID)
		}

		if err := republisher.Republish(ctx, payload); err != nil {
			logger.ErrorContext(ctx, "payload not republished", "error", err)
		}
		return nil
	}
}
