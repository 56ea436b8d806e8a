package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// lotItem is shared by the lots and the history table; DeliveredAt is only
// set on history rows.
type lotItem struct {
	ID              string `dynamodbav:"id"`
	Client          string `dynamodbav:"client"`
	Color           string `dynamodbav:"color"`
	Quantity        int    `dynamodbav:"quantity"`
	Photo           string `dynamodbav:"photo,omitempty"`
	DeliveryDue     string `dynamodbav:"delivery_due,omitempty"`
	PaymentMethod   string `dynamodbav:"payment_method,omitempty"`
	Note            string `dynamodbav:"note,omitempty"`
	RequiresInvoice bool   `dynamodbav:"requires_invoice"`

	Payment     string `dynamodbav:"payment"`
	Measurement string `dynamodbav:"measurement"`
	Invoice     string `dynamodbav:"invoice"`

	Scheduled bool `dynamodbav:"scheduled"`
	Painted   bool `dynamodbav:"painted"`
	Promised  bool `dynamodbav:"promised"`

	Station    *int `dynamodbav:"station,omitempty"`
	PaintOrder *int `dynamodbav:"paint_order,omitempty"`

	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	PaintedAt   string `dynamodbav:"painted_at,omitempty"`
	DeliveredAt string `dynamodbav:"delivered_at,omitempty"`

	Version int64 `dynamodbav:"version"`
}

// LotDynamoRepository persists active lots in DynamoDB.
//
// Table requirements:
//   - lots: PK id (string)
//   - history: PK id (string), written here only by MoveToHistory
//   - stations: PK id (string, the station number), one version counter per
//     station guarding queue membership and paint order
//
// Every write is conditioned on the stored version, so lost updates surface
// as interfaces.ErrConditionFailed.
type LotDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	historyTable  string
	stationsTable string
	now           func() time.Time
}

var (
	_ interfaces.ILotRepository   = (*LotDynamoRepository)(nil)
	_ interfaces.IAtomicDeliverer = (*LotDynamoRepository)(nil)
)

func NewLotDynamoRepository(ddb *dynamodb.Client, tableName, historyTable, stationsTable string) *LotDynamoRepository {
	return &LotDynamoRepository{ddb: ddb, tableName: tableName, historyTable: historyTable, stationsTable: stationsTable, now: time.Now}
}

func (r *LotDynamoRepository) Create(ctx context.Context, l entities.Lot) (entities.Lot, error) {
	if l.Version == 0 {
		l.Version = 1
	}
	av, err := attributevalue.MarshalMap(toLotItem(l))
	if err != nil {
		return entities.Lot{}, err
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
		return entities.Lot{}, conditionFailed(err)
	}
	return l, nil
}

func (r *LotDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lot{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lot{}, nil
	}

	var it lotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lot{}, err
	}
	return fromLotItem(it), nil
}

func (r *LotDynamoRepository) List(ctx context.Context) ([]entities.Lot, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

// ListByStation uses a consistent filtered scan rather than a GSI: index reads
// are eventually consistent and reorder validates membership against this read.
func (r *LotDynamoRepository) ListByStation(ctx context.Context, station int) ([]entities.Lot, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#scheduled = :true AND #station = :station"),
		ExpressionAttributeNames: map[string]string{
			"#scheduled": "scheduled",
			"#station":   "station",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":    &types.AttributeValueMemberBOOL{Value: true},
			":station": &types.AttributeValueMemberN{Value: strconv.Itoa(station)},
		},
	})
}

func (r *LotDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.Lot, error) {
	raw, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Lot, 0, len(raw))
	for _, av := range raw {
		var it lotItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLotItem(it))
	}
	return items, nil
}

// Update replaces the lot if the stored version still equals expectedVersion.
func (r *LotDynamoRepository) Update(ctx context.Context, l entities.Lot, expectedVersion int64) (entities.Lot, error) {
	l.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toLotItem(l))
	if err != nil {
		return entities.Lot{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": versionValue(expectedVersion),
		},
	})
	if err != nil {
		return entities.Lot{}, conditionFailed(err)
	}
	return l, nil
}

func (r *LotDynamoRepository) Delete(ctx context.Context, id string, expectedVersion int64) error {
	_, err := r.ddb.DeleteItem(ctx, r.conditionalDelete(id, expectedVersion))
	return conditionFailed(err)
}

func (r *LotDynamoRepository) conditionalDelete(id string, expectedVersion int64) *dynamodb.DeleteItemInput {
	return &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": versionValue(expectedVersion),
		},
	}
}

type stationItem struct {
	ID      string `dynamodbav:"id"`
	Version int64  `dynamodbav:"version"`
}

func stationKey(station int) map[string]types.AttributeValue {
	return idKey(strconv.Itoa(station))
}

func (r *LotDynamoRepository) StationVersion(ctx context.Context, station int) (int64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.stationsTable),
		Key:            stationKey(station),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}
	var it stationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, err
	}
	return it.Version, nil
}

// bumpStation is the transaction item that moves a station from expected to
// expected+1. The row is created on first use.
func (r *LotDynamoRepository) bumpStation(station int, expected int64) types.TransactWriteItem {
	cond := "#version = :expected"
	values := map[string]types.AttributeValue{
		":next":     versionValue(expected + 1),
		":expected": versionValue(expected),
	}
	if expected == 0 {
		cond = "attribute_not_exists(#version)"
		delete(values, ":expected")
	}
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(r.stationsTable),
			Key:                 stationKey(station),
			UpdateExpression:    aws.String("SET #version = :next"),
			ConditionExpression: aws.String(cond),
			ExpressionAttributeNames: map[string]string{
				"#version": "version",
			},
			ExpressionAttributeValues: values,
		},
	}
}

// PlaceAtStation writes the lot and bumps its station in one transaction.
func (r *LotDynamoRepository) PlaceAtStation(ctx context.Context, l entities.Lot, expectedVersion, stationVersion int64) (entities.Lot, error) {
	if l.Station == nil {
		return entities.Lot{}, interfaces.ErrConditionFailed
	}
	l.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toLotItem(l))
	if err != nil {
		return entities.Lot{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
					ExpressionAttributeNames: map[string]string{
						"#id":      "id",
						"#version": "version",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":expected": versionValue(expectedVersion),
					},
				},
			},
			r.bumpStation(*l.Station, stationVersion),
		},
	})
	if err != nil {
		return entities.Lot{}, conditionFailed(err)
	}
	return l, nil
}

// ApplyPaintOrder writes every index in one transaction. Each row is
// conditioned on its version and on still sitting at the station, and the
// station row on stationVersion, so a lot that joined since the read fails
// the batch.
func (r *LotDynamoRepository) ApplyPaintOrder(ctx context.Context, station int, stationVersion int64, updates []entities.PaintOrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	if len(updates) > maxTransactItems-1 {
		return fmt.Errorf("paint order batch of %d lots exceeds the %d item transaction limit", len(updates), maxTransactItems-1)
	}

	now := formatTime(r.now())
	items := make([]types.TransactWriteItem, 0, len(updates)+1)
	for _, u := range updates {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.tableName),
				Key:                 idKey(u.LotID),
				UpdateExpression:    aws.String("SET #paint_order = :order, #updated_at = :now, #version = :next"),
				ConditionExpression: aws.String("#version = :expected AND #scheduled = :true AND #station = :station"),
				ExpressionAttributeNames: map[string]string{
					"#paint_order": "paint_order",
					"#updated_at":  "updated_at",
					"#version":     "version",
					"#scheduled":   "scheduled",
					"#station":     "station",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":order":    &types.AttributeValueMemberN{Value: strconv.Itoa(u.PaintOrder)},
					":now":      &types.AttributeValueMemberS{Value: now},
					":next":     versionValue(u.ExpectedVersion + 1),
					":expected": versionValue(u.ExpectedVersion),
					":true":     &types.AttributeValueMemberBOOL{Value: true},
					":station":  &types.AttributeValueMemberN{Value: strconv.Itoa(station)},
				},
			},
		})
	}
	items = append(items, r.bumpStation(station, stationVersion))

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return conditionFailed(err)
}

// MoveToHistory writes the history row and deletes the active lot in one
// transaction. It fails if the lot moved past expectedVersion or a history row
// with the same id already exists.
func (r *LotDynamoRepository) MoveToHistory(ctx context.Context, h entities.HistoryEntry, expectedVersion int64) error {
	av, err := attributevalue.MarshalMap(toHistoryItem(h))
	if err != nil {
		return err
	}
	del := r.conditionalDelete(h.ID, expectedVersion)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.historyTable),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName:                 del.TableName,
					Key:                       del.Key,
					ConditionExpression:       del.ConditionExpression,
					ExpressionAttributeNames:  del.ExpressionAttributeNames,
					ExpressionAttributeValues: del.ExpressionAttributeValues,
				},
			},
		},
	})
	return conditionFailed(err)
}

func versionValue(v int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
}

func toLotItem(l entities.Lot) lotItem {
	return lotItem{
		ID:              l.ID,
		Client:          l.Client,
		Color:           l.Color,
		Quantity:        l.Quantity,
		Photo:           l.Photo,
		DeliveryDue:     formatTimePtr(l.DeliveryDue),
		PaymentMethod:   l.PaymentMethod,
		Note:            l.Note,
		RequiresInvoice: l.RequiresInvoice,
		Payment:         string(l.Payment),
		Measurement:     string(l.Measurement),
		Invoice:         string(l.Invoice),
		Scheduled:       l.Scheduled,
		Painted:         l.Painted,
		Promised:        l.Promised,
		Station:         l.Station,
		PaintOrder:      l.PaintOrder,
		CreatedAt:       formatTime(l.CreatedAt),
		UpdatedAt:       formatTime(l.UpdatedAt),
		PaintedAt:       formatTimePtr(l.PaintedAt),
		Version:         l.Version,
	}
}

func fromLotItem(it lotItem) entities.Lot {
	return entities.Lot{
		ID:              it.ID,
		Client:          it.Client,
		Color:           it.Color,
		Quantity:        it.Quantity,
		Photo:           it.Photo,
		DeliveryDue:     parseTimePtr(it.DeliveryDue),
		PaymentMethod:   it.PaymentMethod,
		Note:            it.Note,
		RequiresInvoice: it.RequiresInvoice,
		Payment:         entities.TriState(it.Payment).Normalize(),
		Measurement:     entities.TriState(it.Measurement).Normalize(),
		Invoice:         entities.TriState(it.Invoice).Normalize(),
		Scheduled:       it.Scheduled,
		Painted:         it.Painted,
		Promised:        it.Promised,
		Station:         it.Station,
		PaintOrder:      it.PaintOrder,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		PaintedAt:       parseTimePtr(it.PaintedAt),
		Version:         it.Version,
	}
}

func toHistoryItem(h entities.HistoryEntry) lotItem {
	it := toLotItem(h.Lot)
	it.DeliveredAt = formatTime(h.DeliveredAt)
	return it
}

func fromHistoryItem(it lotItem) entities.HistoryEntry {
	return entities.HistoryEntry{Lot: fromLotItem(it), DeliveredAt: parseTime(it.DeliveredAt)}
}
