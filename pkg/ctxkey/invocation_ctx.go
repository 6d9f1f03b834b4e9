package ctxkey

import "context"

type requestIDKey struct{}

type partitionKeyKey struct{}

type sequenceNumberKey struct{}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

func SetPartitionKey(ctx context.Context, partitionKey string) context.Context {
	return context.WithValue(ctx, partitionKeyKey{}, partitionKey)
}

func PartitionKey(ctx context.Context) string {
	v, _ := ctx.Value(partitionKeyKey{}).(string)
	return v
}

func SetSequenceNumber(ctx context.Context, sequenceNumber string) context.Context {
	return context.WithValue(ctx, sequenceNumberKey{}, sequenceNumber)
}

func SequenceNumber(ctx context.Context) string {
	v, _ := ctx.Value(sequenceNumberKey{}).(string)
	return v
}
