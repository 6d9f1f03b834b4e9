package ctxkey

import (
	"context"
	"testing"
)

func TestInvocationKeys(t *testing.T) {
	ctx := context.Background()
	ctx = SetRequestID(ctx, "req-1")
	ctx = SetPartitionKey(ctx, "pk-1")
	ctx = SetSequenceNumber(ctx, "seq-1")

	if got := RequestID(ctx); got != "req-1" {
		t.Errorf("expected request id %q, got %q", "req-1", got)
	}
	if got := PartitionKey(ctx); got != "pk-1" {
		t.Errorf("expected partition key %q, got %q", "pk-1", got)
	}
	if got := SequenceNumber(ctx); got != "seq-1" {
		t.Errorf("expected sequence number %q, got %q", "seq-1", got)
	}
}

func TestInvocationKeys_Missing(t *testing.T) {
	ctx := context.Background()

	if got := RequestID(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
	if got := PartitionKey(ctx); got != "" {
		t.Errorf("expected empty partition key, got %q", got)
	}
}
