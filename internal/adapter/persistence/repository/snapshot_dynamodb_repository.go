package repository

import (
	"context"
	"time"

	"github.com/digilabhq/DCQuoting/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"

	// One working quote per installation, stored under a fixed key the
	// way the browser original kept one localStorage entry.
	workingQuoteKey = "dcquoting-estimate"
)

type snapshotItem struct {
	ID        string `dynamodbav:"id"`
	Snapshot  string `dynamodbav:"snapshot"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SnapshotDynamoRepository persists the working quote snapshot in
// DynamoDB as a single key-value record.
//
// Table requirements:
//   - PK: id (string)

type SnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISnapshotRepository = (*SnapshotDynamoRepository)(nil)

func NewSnapshotDynamoRepository(ddb *dynamodb.Client) *SnapshotDynamoRepository {
	return &SnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *SnapshotDynamoRepository) Load(ctx context.Context) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: workingQuoteKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Snapshot), nil
}

func (r *SnapshotDynamoRepository) Save(ctx context.Context, data []byte) error {
	it := snapshotItem{
		ID:        workingQuoteKey,
		Snapshot:  string(data),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
