package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/digilabhq/DCQuoting/internal/domain/entities"
	"github.com/digilabhq/DCQuoting/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDepositsTableName = "deposits"
	depositsQuoteNumberIndex = "quote_number-index"
)

type depositItem struct {
	ID                  string `dynamodbav:"id"`
	QuoteNumber         string `dynamodbav:"quote_number"`
	Amount              string `dynamodbav:"amount"`
	Date                string `dynamodbav:"date"`
	Status              string `dynamodbav:"status"`
	ProviderPaymentID   string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderResponseRaw string `dynamodbav:"provider_response_raw,omitempty"`
}

// DepositDynamoRepository persists DepositPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_number-index (PK: quote_number)

type DepositDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositRepository = (*DepositDynamoRepository)(nil)

func NewDepositDynamoRepository(ddb *dynamodb.Client) *DepositDynamoRepository {
	return &DepositDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPOSITS_TABLE", defaultDepositsTableName),
	}
}

func (r *DepositDynamoRepository) Create(ctx context.Context, d entities.DepositPayment) (entities.DepositPayment, error) {
	it := toDepositItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DepositPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.DepositPayment{}, err
	}
	return d, nil
}

func (r *DepositDynamoRepository) ListByQuoteNumber(ctx context.Context, quoteNumber string) ([]entities.DepositPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsQuoteNumberIndex),
		KeyConditionExpression: aws.String("quote_number = :qn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qn": &types.AttributeValueMemberS{Value: quoteNumber},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DepositPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDepositItem(it))
	}
	return items, nil
}

func toDepositItem(d entities.DepositPayment) depositItem {
	return depositItem{
		ID:                  d.ID,
		QuoteNumber:         d.QuoteNumber,
		Amount:              floatToString(d.Amount),
		Date:                d.Date.UTC().Format(time.RFC3339Nano),
		Status:              string(d.Status),
		ProviderPaymentID:   d.ProviderPaymentID,
		ProviderResponseRaw: string(d.ProviderResponseRaw),
	}
}

func fromDepositItem(it depositItem) entities.DepositPayment {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	d := entities.DepositPayment{
		ID:                it.ID,
		QuoteNumber:       it.QuoteNumber,
		Amount:            amount,
		Date:              date,
		Status:            entities.DepositStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
	}
	if it.ProviderResponseRaw != "" && json.Valid([]byte(it.ProviderResponseRaw)) {
		d.ProviderResponseRaw = json.RawMessage(it.ProviderResponseRaw)
	}
	return d
}
