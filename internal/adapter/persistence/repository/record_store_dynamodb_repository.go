package repository

import (
	"context"
	"errors"
	"net"
	"sort"
	"strconv"
	"strings"
	"time"

	"mecanica_parts/internal/domain/entities"
	"mecanica_parts/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/google/uuid"
)

const (
	defaultOrdersTableName       = "repair_orders"
	defaultPartsTableName        = "scanned_parts"
	defaultFinalizedEntriesTable = "finalized_entries"
	defaultFinalizedLinesTable   = "finalized_lines"
	orderNumberIndex             = "order_number-index"
	// TransactWriteItems tops out at 100 items; one goes to the order flip
	// and one to the snapshot header.
	maxFinalizeParts = 98
)

type orderItem struct {
	ID          string `dynamodbav:"id"`
	OrderNumber string `dynamodbav:"order_number"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	FinalizedAt string `dynamodbav:"finalized_at,omitempty"`
}

type partItem struct {
	OrderID   string `dynamodbav:"order_id"`
	Barcode   string `dynamodbav:"barcode"`
	Quantity  int    `dynamodbav:"quantity"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type finalizedEntryItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id"`
	OrderNumber string `dynamodbav:"order_number"`
	FinalizedAt string `dynamodbav:"finalized_at"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type finalizedLineItem struct {
	EntryID  string `dynamodbav:"entry_id"`
	Barcode  string `dynamodbav:"barcode"`
	Quantity int    `dynamodbav:"quantity"`
}

// RecordStoreDynamoRepository is the networked record store.
//
// Table requirements:
//   - repair_orders:     PK id (S), GSI order_number-index on order_number
//   - scanned_parts:     PK order_id (S), SK barcode (S)
//   - finalized_entries: PK id (S)
//   - finalized_lines:   PK entry_id (S), SK barcode (S)
//
// Every method wraps connectivity and timeout failures in
// *interfaces.TransientError so the commit boundary can queue scans instead
// of surfacing them as hard errors.
type RecordStoreDynamoRepository struct {
	ddb          *dynamodb.Client
	ordersTable  string
	partsTable   string
	entriesTable string
	linesTable   string
}

var _ interfaces.IRecordStore = (*RecordStoreDynamoRepository)(nil)

func NewRecordStoreDynamoRepository(ddb *dynamodb.Client) *RecordStoreDynamoRepository {
	return &RecordStoreDynamoRepository{
		ddb:          ddb,
		ordersTable:  getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		partsTable:   getenvDefault("PARTS_TABLE", defaultPartsTableName),
		entriesTable: getenvDefault("FINALIZED_ENTRIES_TABLE", defaultFinalizedEntriesTable),
		linesTable:   getenvDefault("FINALIZED_LINES_TABLE", defaultFinalizedLinesTable),
	}
}

func (r *RecordStoreDynamoRepository) CreateOrder(ctx context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
	// The GSI cannot carry a uniqueness constraint, so check the number
	// first and let the conditional put close the remaining window on id.
	existing, err := r.GetOrderByNumber(ctx, o.OrderNumber)
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if existing.ID != "" {
		return entities.RepairOrder{}, interfaces.ErrConflict
	}

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.RepairOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.ordersTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RepairOrder{}, interfaces.ErrConflict
		}
		return entities.RepairOrder{}, wrapTransient(err)
	}
	return o, nil
}

func (r *RecordStoreDynamoRepository) GetOrderByID(ctx context.Context, id string) (entities.RepairOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.ordersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairOrder{}, wrapTransient(err)
	}
	if len(out.Item) == 0 {
		return entities.RepairOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RepairOrder{}, err
	}
	return fromOrderItem(it), nil
}

func (r *RecordStoreDynamoRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.RepairOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.ordersTable),
		IndexName:              aws.String(orderNumberIndex),
		KeyConditionExpression: aws.String("#n = :n"),
		ExpressionAttributeNames: map[string]string{
			"#n": "order_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberS{Value: orderNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.RepairOrder{}, wrapTransient(err)
	}
	if len(out.Items) == 0 {
		return entities.RepairOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.RepairOrder{}, err
	}
	return fromOrderItem(it), nil
}

// SearchOrders scans the orders table and filters order numbers by
// substring. A workshop holds hundreds of orders, not millions; a scan is
// fine at this scale and keeps the table schema flat.
func (r *RecordStoreDynamoRepository) SearchOrders(ctx context.Context, query string, limit int) ([]entities.RepairOrder, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.ordersTable),
	}
	if query != "" {
		in.FilterExpression = aws.String("contains(#n, :q)")
		in.ExpressionAttributeNames = map[string]string{"#n": "order_number"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberS{Value: query},
		}
	}

	var orders []entities.RepairOrder
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, wrapTransient(err)
		}
		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromOrderItem(it))
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (r *RecordStoreDynamoRepository) DeleteOrder(ctx context.Context, orderID string) error {
	parts, err := r.ListParts(ctx, orderID)
	if err != nil {
		return err
	}

	// Parts are owned by the order; delete them first so a failure here
	// never leaves orphaned lines behind a deleted order.
	for _, p := range parts {
		if err := r.DeletePart(ctx, orderID, p.Barcode); err != nil {
			return err
		}
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.ordersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	return wrapTransient(err)
}

func (r *RecordStoreDynamoRepository) ListParts(ctx context.Context, orderID string) ([]entities.ScannedPart, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.partsTable),
		KeyConditionExpression: aws.String("#oid = :oid"),
		ExpressionAttributeNames: map[string]string{
			"#oid": "order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, wrapTransient(err)
	}

	var items []partItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	parts := make([]entities.ScannedPart, 0, len(items))
	for _, it := range items {
		parts = append(parts, fromPartItem(it))
	}
	return parts, nil
}

// UpsertPartIncrement is a single atomic UpdateItem: ADD creates the row
// with quantity 1 when absent and increments it when present, so a repeat
// scan can never produce a duplicate part.
func (r *RecordStoreDynamoRepository) UpsertPartIncrement(ctx context.Context, orderID, barcode string) (entities.ScannedPart, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.partsTable),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
			"barcode":  &types.AttributeValueMemberS{Value: barcode},
		},
		UpdateExpression: aws.String("ADD #qty :one SET #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#qty":        "quantity",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":now": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ScannedPart{}, wrapTransient(err)
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ScannedPart{}, err
	}
	return fromPartItem(it), nil
}

func (r *RecordStoreDynamoRepository) SetPartQuantity(ctx context.Context, orderID, barcode string, qty int) (entities.ScannedPart, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.partsTable),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
			"barcode":  &types.AttributeValueMemberS{Value: barcode},
		},
		ConditionExpression: aws.String("attribute_exists(#oid)"),
		UpdateExpression:    aws.String("SET #qty = :qty, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#oid":        "order_id",
			"#qty":        "quantity",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qty": &types.AttributeValueMemberN{Value: strconv.Itoa(qty)},
			":now": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ScannedPart{}, nil
		}
		return entities.ScannedPart{}, wrapTransient(err)
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ScannedPart{}, err
	}
	return fromPartItem(it), nil
}

func (r *RecordStoreDynamoRepository) DeletePart(ctx context.Context, orderID, barcode string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.partsTable),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
			"barcode":  &types.AttributeValueMemberS{Value: barcode},
		},
	})
	return wrapTransient(err)
}

// FinalizeOrder is the one true multi-step transaction: flip the order to
// finalized (conditioned on it still being a draft), write the snapshot
// header, and copy every part into a snapshot line. All or nothing.
func (r *RecordStoreDynamoRepository) FinalizeOrder(ctx context.Context, order entities.RepairOrder, parts []entities.ScannedPart) (entities.FinalizedEntry, error) {
	if len(parts) > maxFinalizeParts {
		return entities.FinalizedEntry{}, errors.New("finalize: too many parts for a single transaction")
	}

	now := time.Now().UTC()
	entry := entities.FinalizedEntry{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		FinalizedAt: now,
		CreatedAt:   now,
	}

	entryAV, err := attributevalue.MarshalMap(toFinalizedEntryItem(entry))
	if err != nil {
		return entities.FinalizedEntry{}, err
	}

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.ordersTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: order.ID},
				},
				ConditionExpression: aws.String("#status = :draft"),
				UpdateExpression:    aws.String("SET #status = :finalized, #finalized_at = :now"),
				ExpressionAttributeNames: map[string]string{
					"#status":       "status",
					"#finalized_at": "finalized_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":draft":     &types.AttributeValueMemberS{Value: string(entities.OrderStatusDraft)},
					":finalized": &types.AttributeValueMemberS{Value: string(entities.OrderStatusFinalized)},
					":now":       &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
				},
			},
		},
		{
			Put: &types.Put{
				TableName:           aws.String(r.entriesTable),
				Item:                entryAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
	}

	for _, p := range parts {
		lineAV, err := attributevalue.MarshalMap(finalizedLineItem{
			EntryID:  entry.ID,
			Barcode:  p.Barcode,
			Quantity: p.Quantity,
		})
		if err != nil {
			return entities.FinalizedEntry{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.linesTable),
				Item:      lineAV,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					// Already finalized by a concurrent caller.
					return entities.FinalizedEntry{}, nil
				}
			}
		}
		return entities.FinalizedEntry{}, wrapTransient(err)
	}
	return entry, nil
}

func (r *RecordStoreDynamoRepository) ListFinalizedEntries(ctx context.Context) ([]entities.FinalizedEntry, error) {
	var entries []entities.FinalizedEntry
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.entriesTable),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, wrapTransient(err)
		}
		var items []finalizedEntryItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			entries = append(entries, fromFinalizedEntryItem(it))
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].FinalizedAt.After(entries[j].FinalizedAt)
	})
	return entries, nil
}

func (r *RecordStoreDynamoRepository) GetFinalizedEntry(ctx context.Context, entryID string) (entities.FinalizedEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.entriesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entryID},
		},
	})
	if err != nil {
		return entities.FinalizedEntry{}, wrapTransient(err)
	}
	if len(out.Item) == 0 {
		return entities.FinalizedEntry{}, nil
	}

	var it finalizedEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinalizedEntry{}, err
	}
	return fromFinalizedEntryItem(it), nil
}

func (r *RecordStoreDynamoRepository) ListFinalizedLines(ctx context.Context, entryID string) ([]entities.FinalizedLine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.linesTable),
		KeyConditionExpression: aws.String("#eid = :eid"),
		ExpressionAttributeNames: map[string]string{
			"#eid": "entry_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: entryID},
		},
	})
	if err != nil {
		return nil, wrapTransient(err)
	}

	var items []finalizedLineItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	lines := make([]entities.FinalizedLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, entities.FinalizedLine{
			EntryID:  it.EntryID,
			Barcode:  it.Barcode,
			Quantity: it.Quantity,
		})
	}
	return lines, nil
}

// wrapTransient classifies transport-level failures (connection refused,
// DNS, timeouts) as TransientError. Service-side errors like conditional
// check failures pass through untouched.
func wrapTransient(err error) error {
	if err == nil {
		return nil
	}
	var rse *smithyhttp.RequestSendError
	var ne net.Error
	if errors.As(err, &rse) || errors.As(err, &ne) || errors.Is(err, context.DeadlineExceeded) {
		return &interfaces.TransientError{Err: err}
	}
	return err
}

func toOrderItem(o entities.RepairOrder) orderItem {
	it := orderItem{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.FinalizedAt != nil {
		it.FinalizedAt = o.FinalizedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.RepairOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	o := entities.RepairOrder{
		ID:          it.ID,
		OrderNumber: strings.ToUpper(it.OrderNumber),
		Status:      entities.OrderStatus(it.Status),
		CreatedAt:   createdAt,
	}
	if it.FinalizedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.FinalizedAt); err == nil {
			o.FinalizedAt = &t
		}
	}
	return o
}

func fromPartItem(it partItem) entities.ScannedPart {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ScannedPart{
		OrderID:   it.OrderID,
		Barcode:   it.Barcode,
		Quantity:  it.Quantity,
		UpdatedAt: updatedAt,
	}
}

func toFinalizedEntryItem(e entities.FinalizedEntry) finalizedEntryItem {
	return finalizedEntryItem{
		ID:          e.ID,
		OrderID:     e.OrderID,
		OrderNumber: e.OrderNumber,
		FinalizedAt: e.FinalizedAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFinalizedEntryItem(it finalizedEntryItem) entities.FinalizedEntry {
	finalizedAt, _ := time.Parse(time.RFC3339Nano, it.FinalizedAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.FinalizedEntry{
		ID:          it.ID,
		OrderID:     it.OrderID,
		OrderNumber: it.OrderNumber,
		FinalizedAt: finalizedAt,
		CreatedAt:   createdAt,
	}
}
