package repository

import (
	"context"
	"strconv"
	"strings"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "repair_orders"
	OrdersOrderNumberIndex = "order_number-index"

	// orderNumberGuardPrefix keys the item that reserves an order number.
	// Guard items carry no order_number, so they stay out of the index and
	// out of List.
	orderNumberGuardPrefix = "order_number#"
)

type orderItem struct {
	ID              string `dynamodbav:"id"`
	OrderNumber     string `dynamodbav:"order_number"`
	Brand           string `dynamodbav:"brand"`
	Model           string `dynamodbav:"model"`
	RepairType      string `dynamodbav:"repair_type"`
	Cost            string `dynamodbav:"cost"`
	CustomerName    string `dynamodbav:"customer_name"`
	CustomerPhone   string `dynamodbav:"customer_phone"`
	CustomerAddress string `dynamodbav:"customer_address"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI order_number-index: order_number (string)
//
// created_at is written once and used to return List in creation order.
// Create and Delete write the order and its order-number guard in one
// transaction, so two orders can never share a number.

type OrderDynamoRepository struct {
	ddb       dynamoDBAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb dynamoDBAPI, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("ORDERS_TABLE", defaultOrdersTableName)
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var items []orderItem
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ConsistentRead:           aws.Bool(true),
		FilterExpression:         aws.String("attribute_exists(#order_number)"),
		ExpressionAttributeNames: map[string]string{"#order_number": "order_number"},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
	}

	sortByCreation(items, func(it orderItem) string { return it.CreatedAt }, func(it orderItem) string { return it.ID })
	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrderItem(it))
	}
	return out, nil
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	now := nowString()
	it := toOrderItem(o)
	it.CreatedAt, it.UpdatedAt = now, now
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
	}

	notExists := aws.String("attribute_not_exists(#id)")
	idName := map[string]string{"#id": "id"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: idName,
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     orderNumberGuardKey(o.OrderNumber),
				ConditionExpression:      notExists,
				ExpressionAttributeNames: idName,
			}},
		},
	})
	switch {
	case canceledByCondition(err, 0):
		return entities.Order{}, interfaces.ErrRecordExists
	case canceledByCondition(err, 1):
		return entities.Order{}, interfaces.ErrOrderNumberExists
	case err != nil:
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	if strings.HasPrefix(id, orderNumberGuardPrefix) {
		return entities.Order{}, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(OrdersOrderNumberIndex),
		KeyConditionExpression: aws.String("order_number = :num"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":num": &types.AttributeValueMemberS{Value: orderNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// Replace overwrites the mutable fields of an existing order. id,
// order_number and created_at are never touched.
func (r *OrderDynamoRepository) Replace(ctx context.Context, o entities.Order) (entities.Order, error) {
	if strings.HasPrefix(o.ID, orderNumberGuardPrefix) {
		return entities.Order{}, nil
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: o.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #brand = :brand, #model = :model, #repair_type = :repair_type, #cost = :cost, " +
			"#customer_name = :customer_name, #customer_phone = :customer_phone, #customer_address = :customer_address, " +
			"#status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":brand":            &types.AttributeValueMemberS{Value: o.Brand},
			":model":            &types.AttributeValueMemberS{Value: o.Model},
			":repair_type":      &types.AttributeValueMemberS{Value: o.RepairType},
			":cost":             &types.AttributeValueMemberS{Value: floatToString(o.Cost)},
			":customer_name":    &types.AttributeValueMemberS{Value: o.CustomerName},
			":customer_phone":   &types.AttributeValueMemberS{Value: o.CustomerPhone},
			":customer_address": &types.AttributeValueMemberS{Value: o.CustomerAddress},
			":status":           &types.AttributeValueMemberS{Value: string(o.Status)},
			":updated_at":       &types.AttributeValueMemberS{Value: nowString()},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#brand":            "brand",
			"#model":            "model",
			"#repair_type":      "repair_type",
			"#cost":             "cost",
			"#customer_name":    "customer_name",
			"#customer_phone":   "customer_phone",
			"#customer_address": "customer_address",
			"#status":           "status",
			"#updated_at":       "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// Delete removes the order and releases its order number.
func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing.ID == "" {
		return false, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: id},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key:       orderNumberGuardKey(existing.OrderNumber),
			}},
		},
	})
	if err != nil {
		if canceledByCondition(err, 0) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func orderNumberGuardKey(orderNumber string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: orderNumberGuardPrefix + orderNumber},
	}
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		Brand:           o.Brand,
		Model:           o.Model,
		RepairType:      o.RepairType,
		Cost:            floatToString(o.Cost),
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Status:          string(o.Status),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	cost, _ := strconv.ParseFloat(it.Cost, 64)
	return entities.Order{
		ID:              it.ID,
		OrderNumber:     it.OrderNumber,
		Brand:           it.Brand,
		Model:           it.Model,
		RepairType:      it.RepairType,
		Cost:            cost,
		CustomerName:    it.CustomerName,
		CustomerPhone:   it.CustomerPhone,
		CustomerAddress: it.CustomerAddress,
		Status:          entities.OrderStatus(it.Status),
	}
}
