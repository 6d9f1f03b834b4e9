// Package store holds the audit writers. Every backend overwrites the entry
// stored under the same partition key: no merge, no conditional write.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ashitosh07/lambda/internal/audit"
	"github.com/ashitosh07/lambda/internal/failure"
)

type AuditStore interface {
	Put(ctx context.Context, entry audit.Entry) error
}

const (
	BackendDynamoDB = "dynamodb"
	BackendS3       = "s3"
	BackendFile     = "file"
)

type timeoutStore struct {
	next    AuditStore
	timeout time.Duration
}

// WithTimeout bounds every Put by d. A non-positive d returns s unchanged.
func WithTimeout(s AuditStore, d time.Duration) AuditStore {
	if d <= 0 {
		return s
	}
	return &timeoutStore{next: s, timeout: d}
}

func (ts *timeoutStore) Put(ctx context.Context, entry audit.Entry) error {
	ctx, cancel := context.WithTimeout(ctx, ts.timeout)
	defer cancel()
	return ts.next.Put(ctx, entry)
}

func validate(op string, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return failure.StoreWrite(op, fmt.Errorf("invalid audit entry: %w", err))
	}
	return nil
}
