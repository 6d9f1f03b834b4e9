package store

//go:generate mockgen -source=dynamo_audit_store.go -destination=mocks/mock_dynamo_audit_store.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashitosh07/lambda/internal/audit"
	"github.com/ashitosh07/lambda/internal/failure"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type DynamoDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type DynamoAuditStore struct {
	table  string
	client DynamoDBClient
}

var ErrTableNotConfigured = errors.New("audit table name is not configured")

func NewDynamoAuditStore(awsCfg aws.Config, table, endpoint string) *DynamoAuditStore {
	var client *dynamodb.Client
	if endpoint != "" {
		// Use custom endpoint (LocalStack)
		client = dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	} else {
		client = dynamodb.NewFromConfig(awsCfg)
	}

	return NewDynamoAuditStoreWithClient(table, client)
}

func NewDynamoAuditStoreWithClient(table string, client DynamoDBClient) *DynamoAuditStore {
	return &DynamoAuditStore{
		table:  table,
		client: client,
	}
}

// Put writes every attribute as a string, keyed by PartitionKey.
func (ds *DynamoAuditStore) Put(ctx context.Context, entry audit.Entry) error {
	const op = "dynamodb put item"
	if ds.table == "" {
		return failure.StoreWrite(op, ErrTableNotConfigured)
	}
	if err := validate(op, entry); err != nil {
		return err
	}

	item := make(map[string]types.AttributeValue)
	for name, value := range entry.Item() {
		item[name] = &types.AttributeValueMemberS{Value: value}
	}

	_, err := ds.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(ds.table),
		Item:      item,
	})
	if err != nil {
		return failure.StoreWrite(op, fmt.Errorf("failed to put item into %s: %w", ds.table, err))
	}

	return nil
}
