package repository

import (
	"context"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

type financialRecordItem struct {
	ID                string `dynamodbav:"id"`
	Client            string `dynamodbav:"client"`
	Amount            string `dynamodbav:"amount"`
	Date              string `dynamodbav:"date"`
	LotID             string `dynamodbav:"lot_id,omitempty"`
	ObligationID      string `dynamodbav:"obligation_id,omitempty"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// FinancialRecordDynamoRepository is one append-only ledger table. The source
// tag is not stored: it is implied by the table.
//
// Table requirements:
//   - PK: id (string)
type FinancialRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	source    entities.RecordSource
}

var _ interfaces.IFinancialRecordRepository = (*FinancialRecordDynamoRepository)(nil)

func NewFinancialRecordDynamoRepository(ddb *dynamodb.Client, tableName string, source entities.RecordSource) *FinancialRecordDynamoRepository {
	return &FinancialRecordDynamoRepository{ddb: ddb, tableName: tableName, source: source}
}

func (r *FinancialRecordDynamoRepository) Source() entities.RecordSource {
	return r.source
}

func (r *FinancialRecordDynamoRepository) Append(ctx context.Context, rec entities.FinancialRecord) error {
	av, err := attributevalue.MarshalMap(toFinancialRecordItem(rec))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return conditionFailed(err)
}

func (r *FinancialRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.FinancialRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FinancialRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.FinancialRecord{}, nil
	}
	var it financialRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinancialRecord{}, err
	}
	return fromFinancialRecordItem(it, r.source), nil
}

func (r *FinancialRecordDynamoRepository) List(ctx context.Context) ([]entities.FinancialRecord, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.FinancialRecord, 0, len(raw))
	for _, av := range raw {
		var it financialRecordItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromFinancialRecordItem(it, r.source))
	}
	return out, nil
}

func (r *FinancialRecordDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toFinancialRecordItem(rec entities.FinancialRecord) financialRecordItem {
	return financialRecordItem{
		ID:                rec.ID,
		Client:            rec.Client,
		Amount:            rec.Amount.String(),
		Date:              formatTime(rec.Date),
		LotID:             rec.LotID,
		ObligationID:      rec.ObligationID,
		ProviderPaymentID: rec.ProviderPaymentID,
		CreatedAt:         formatTime(rec.CreatedAt),
	}
}

func fromFinancialRecordItem(it financialRecordItem, source entities.RecordSource) entities.FinancialRecord {
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.FinancialRecord{
		ID:                it.ID,
		Source:            source,
		Client:            it.Client,
		Amount:            amount,
		Date:              parseTime(it.Date),
		LotID:             it.LotID,
		ObligationID:      it.ObligationID,
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
