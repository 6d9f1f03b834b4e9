// Package logging builds the JSON slog logger shared by both functions.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/ashitosh07/lambda/pkg/ctxkey"
)

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a JSON logger that adds the invocation values found in the
// record context (request id, partition key, sequence number) to every line.
func New(w io.Writer, level string) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(&contextHandler{Handler: h})
}

type contextHandler struct {
	slog.Handler
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if v := ctxkey.RequestID(ctx); v != "" {
		r.AddAttrs(slog.String("request_id", v))
	}
	if v := ctxkey.PartitionKey(ctx); v != "" {
		r.AddAttrs(slog.String("partition_key", v))
	}
	if v := ctxkey.SequenceNumber(ctx); v != "" {
		r.AddAttrs(slog.String("sequence_number", v))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name)}
}
