package repository

import (
	"context"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAppointmentsTableName = "repair_appointments"

type appointmentItem struct {
	ID              string `dynamodbav:"id"`
	CustomerName    string `dynamodbav:"customer_name"`
	CustomerPhone   string `dynamodbav:"customer_phone"`
	AppointmentDate string `dynamodbav:"appointment_date"`
	AppointmentTime string `dynamodbav:"appointment_time"`
	Service         string `dynamodbav:"service"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type AppointmentDynamoRepository struct {
	ddb       dynamoDBAPI
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb dynamoDBAPI, tableName string) *AppointmentDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName)
	}
	return &AppointmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AppointmentDynamoRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	var items []appointmentItem
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it appointmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
	}

	sortByCreation(items, func(it appointmentItem) string { return it.CreatedAt }, func(it appointmentItem) string { return it.ID })
	out := make([]entities.Appointment, 0, len(items))
	for _, it := range items {
		out = append(out, fromAppointmentItem(it))
	}
	return out, nil
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	it := toAppointmentItem(a)
	it.CreatedAt = nowString()
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Appointment{}, err
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
		return entities.Appointment{}, err
	}
	return a, nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:              a.ID,
		CustomerName:    a.CustomerName,
		CustomerPhone:   a.CustomerPhone,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		Service:         a.Service,
		Status:          string(a.Status),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:              it.ID,
		CustomerName:    it.CustomerName,
		CustomerPhone:   it.CustomerPhone,
		AppointmentDate: it.AppointmentDate,
		AppointmentTime: it.AppointmentTime,
		Service:         it.Service,
		Status:          entities.AppointmentStatus(it.Status),
	}
}
