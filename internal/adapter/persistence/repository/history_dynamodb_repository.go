package repository

import (
	"context"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// HistoryDynamoRepository persists delivered lots.
//
// Table requirements:
//   - PK: id (string), the id of the delivered lot
type HistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHistoryRepository = (*HistoryDynamoRepository)(nil)

func NewHistoryDynamoRepository(ddb *dynamodb.Client, tableName string) *HistoryDynamoRepository {
	return &HistoryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *HistoryDynamoRepository) Create(ctx context.Context, h entities.HistoryEntry) error {
	av, err := attributevalue.MarshalMap(toHistoryItem(h))
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

func (r *HistoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.HistoryEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.HistoryEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.HistoryEntry{}, nil
	}
	var it lotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.HistoryEntry{}, err
	}
	return fromHistoryItem(it), nil
}

func (r *HistoryDynamoRepository) List(ctx context.Context) ([]entities.HistoryEntry, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.HistoryEntry, 0, len(raw))
	for _, av := range raw {
		var it lotItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromHistoryItem(it))
	}
	return out, nil
}

func (r *HistoryDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}
