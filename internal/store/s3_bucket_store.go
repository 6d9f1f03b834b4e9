package store

//go:generate mockgen -source=s3_bucket_store.go -destination=mocks/mock_s3_bucket_store.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ashitosh07/lambda/internal/audit"
	"github.com/ashitosh07/lambda/internal/failure"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3BucketStore keeps one JSON object per partition key.
type S3BucketStore struct {
	bucket string
	client S3Client
}

var ErrBucketNotConfigured = errors.New("audit bucket is not configured")

func NewS3BucketStore(awsCfg aws.Config, bucket, endpoint string, usePathStyle bool) *S3BucketStore {
	var client *s3.Client
	if endpoint != "" {
		// Use custom endpoint (MinIO/LocalStack)
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = usePathStyle
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return NewS3BucketStoreWithClient(bucket, client)
}

func NewS3BucketStoreWithClient(bucket string, client S3Client) *S3BucketStore {
	return &S3BucketStore{
		bucket: bucket,
		client: client,
	}
}

func ObjectKey(entry audit.Entry) string {
	return fmt.Sprintf("audits/%s/%s.json", entry.Family, entry.PartitionKey)
}

func (s3bs *S3BucketStore) Put(ctx context.Context, entry audit.Entry) error {
	const op = "s3 put object"
	if s3bs.bucket == "" {
		return failure.StoreWrite(op, ErrBucketNotConfigured)
	}
	if err := validate(op, entry); err != nil {
		return err
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return failure.StoreWrite(op, fmt.Errorf("failed to marshal entry: %w", err))
	}

	_, err = s3bs.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s3bs.bucket),
		Key:         aws.String(ObjectKey(entry)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return failure.StoreWrite(op, fmt.Errorf("failed to upload to S3: %w", err))
	}

	return nil
}
