package repository

import (
	"context"
	"testing"

	"repair_tracker/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestAppointmentDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create writes a conditional put", func(t *testing.T) {
		f := &fakeDynamo{}
		r := NewAppointmentDynamoRepository(f, "appts")
		a := entities.Appointment{ID: "a1", CustomerName: "Ana", Status: entities.AppointmentStatusProgramada}
		if _, err := r.Create(ctx, a); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if aws.ToString(f.putIn.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("expected not-exists condition, got %s", aws.ToString(f.putIn.ConditionExpression))
		}
		status, ok := f.putIn.Item["status"].(*types.AttributeValueMemberS)
		if !ok || status.Value != "Programada" {
			t.Fatalf("expected status Programada, got %#v", f.putIn.Item["status"])
		}
	})

	t.Run("list returns creation order", func(t *testing.T) {
		f := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{{
			Items: []map[string]types.AttributeValue{
				mustMarshal(t, appointmentItem{ID: "2", CreatedAt: "2024-02-02T00:00:00Z"}),
				mustMarshal(t, appointmentItem{ID: "1", CreatedAt: "2024-02-01T00:00:00Z"}),
			},
		}}}
		r := NewAppointmentDynamoRepository(f, "appts")
		list, err := r.List(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(list) != 2 || list[0].ID != "1" || list[1].ID != "2" {
			t.Fatalf("expected [1 2], got %+v", list)
		}
	})
}
