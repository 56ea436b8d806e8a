package repository

import (
	"context"
	"strings"
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type obligationItem struct {
	ID        string `dynamodbav:"id"`
	Client    string `dynamodbav:"client"`
	Amount    string `dynamodbav:"amount"`
	DueDate   string `dynamodbav:"due_date,omitempty"`
	LotID     string `dynamodbav:"lot_id,omitempty"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	SettledAt string `dynamodbav:"settled_at,omitempty"`
}

// ObligationDynamoRepository persists pending obligations.
//
// Table requirements:
//   - obligations: PK id (string)
//   - converted records: PK id (string), written here only by SettleObligation
type ObligationDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	convertedTable string
}

var (
	_ interfaces.IObligationRepository = (*ObligationDynamoRepository)(nil)
	_ interfaces.IAtomicSettler        = (*ObligationDynamoRepository)(nil)
)

func NewObligationDynamoRepository(ddb *dynamodb.Client, tableName, convertedTable string) *ObligationDynamoRepository {
	return &ObligationDynamoRepository{ddb: ddb, tableName: tableName, convertedTable: convertedTable}
}

func (r *ObligationDynamoRepository) Create(ctx context.Context, o entities.PendingObligation) error {
	av, err := attributevalue.MarshalMap(toObligationItem(o))
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

func (r *ObligationDynamoRepository) GetByID(ctx context.Context, id string) (entities.PendingObligation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PendingObligation{}, err
	}
	if len(out.Item) == 0 {
		return entities.PendingObligation{}, nil
	}
	var it obligationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PendingObligation{}, err
	}
	return fromObligationItem(it), nil
}

func (r *ObligationDynamoRepository) List(ctx context.Context) ([]entities.PendingObligation, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.PendingObligation, 0, len(raw))
	for _, av := range raw {
		var it obligationItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromObligationItem(it))
	}
	return out, nil
}

func (r *ObligationDynamoRepository) UpdatePending(ctx context.Context, o entities.PendingObligation) (entities.PendingObligation, error) {
	return r.update(ctx, o.ID, entities.ObligationPending, func() (string, map[string]types.AttributeValue, map[string]string) {
		set := []string{"#client = :client", "#amount = :amount"}
		var remove []string
		vals := map[string]types.AttributeValue{
			":client": &types.AttributeValueMemberS{Value: o.Client},
			":amount": &types.AttributeValueMemberS{Value: o.Amount.String()},
		}
		names := map[string]string{
			"#client":   "client",
			"#amount":   "amount",
			"#due_date": "due_date",
			"#lot_id":   "lot_id",
		}
		if o.DueDate != nil {
			set = append(set, "#due_date = :due_date")
			vals[":due_date"] = &types.AttributeValueMemberS{Value: formatTime(*o.DueDate)}
		} else {
			remove = append(remove, "#due_date")
		}
		if o.LotID != "" {
			set = append(set, "#lot_id = :lot_id")
			vals[":lot_id"] = &types.AttributeValueMemberS{Value: o.LotID}
		} else {
			remove = append(remove, "#lot_id")
		}
		expr := "SET " + strings.Join(set, ", ")
		if len(remove) > 0 {
			expr += " REMOVE " + strings.Join(remove, ", ")
		}
		return expr, vals, names
	})
}

func (r *ObligationDynamoRepository) MarkSettled(ctx context.Context, id string, settledAt time.Time) error {
	_, err := r.update(ctx, id, entities.ObligationPending, settleExpression(settledAt))
	return err
}

func (r *ObligationDynamoRepository) RevertSettled(ctx context.Context, id string) error {
	_, err := r.update(ctx, id, entities.ObligationSettled, func() (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #status = :status REMOVE #settled_at",
			map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(entities.ObligationPending)},
			},
			map[string]string{
				"#settled_at": "settled_at",
			}
	})
	return err
}

func (r *ObligationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

// SettleObligation flips the obligation and appends the converted record in
// one transaction.
func (r *ObligationDynamoRepository) SettleObligation(ctx context.Context, obligationID string, rec entities.FinancialRecord) error {
	recAV, err := attributevalue.MarshalMap(toFinancialRecordItem(rec))
	if err != nil {
		return err
	}
	expr, vals, names := settleExpression(rec.Date)()
	vals[":expected_status"] = &types.AttributeValueMemberS{Value: string(entities.ObligationPending)}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:                 aws.String(r.tableName),
					Key:                       idKey(obligationID),
					UpdateExpression:          aws.String(expr),
					ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected_status"),
					ExpressionAttributeValues: vals,
					ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.convertedTable),
					Item:                recAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	return conditionFailed(err)
}

func settleExpression(at time.Time) func() (string, map[string]types.AttributeValue, map[string]string) {
	return func() (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #status = :status, #settled_at = :settled_at",
			map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(entities.ObligationSettled)},
				":settled_at": &types.AttributeValueMemberS{Value: formatTime(at)},
			},
			map[string]string{
				"#status":     "status",
				"#settled_at": "settled_at",
			}
	}
}

// update applies an UpdateExpression if the obligation exists with the given status.
func (r *ObligationDynamoRepository) update(
	ctx context.Context,
	id string,
	expected entities.ObligationStatus,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.PendingObligation, error) {
	updateExpr, values, names := build()
	values[":expected_status"] = &types.AttributeValueMemberS{Value: string(expected)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected_status"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.PendingObligation{}, conditionFailed(err)
	}
	var it obligationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PendingObligation{}, err
	}
	return fromObligationItem(it), nil
}

func toObligationItem(o entities.PendingObligation) obligationItem {
	return obligationItem{
		ID:        o.ID,
		Client:    o.Client,
		Amount:    o.Amount.String(),
		DueDate:   formatTimePtr(o.DueDate),
		LotID:     o.LotID,
		Status:    string(o.Status),
		CreatedAt: formatTime(o.CreatedAt),
		SettledAt: formatTimePtr(o.SettledAt),
	}
}

func fromObligationItem(it obligationItem) entities.PendingObligation {
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.PendingObligation{
		ID:        it.ID,
		Client:    it.Client,
		Amount:    amount,
		DueDate:   parseTimePtr(it.DueDate),
		LotID:     it.LotID,
		Status:    entities.ObligationStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		SettledAt: parseTimePtr(it.SettledAt),
	}
}
