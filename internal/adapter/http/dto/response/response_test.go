package response

import (
	"encoding/json"
	"testing"

	"repair_tracker/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	o := entities.Order{
		ID:          "o1",
		OrderNumber: "000000abc",
		Brand:       "LG",
		Cost:        80,
		Status:      entities.OrderStatusNoReparado,
	}

	res := FromOrder(o)
	if res.ID != "o1" || res.OrderNumber != "000000abc" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Cost != 80 || res.Status != "No reparado" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}

	raw, _ := json.Marshal(res)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body["_id"] != "o1" || body["repairType"] != "" {
		t.Fatalf("unexpected wire shape: %s", raw)
	}
}

func TestFromOrders_EmptyIsArray(t *testing.T) {
	raw, _ := json.Marshal(FromOrders(nil))
	if string(raw) != "[]" {
		t.Fatalf("expected [], got %s", raw)
	}
}

func TestFromAppointments(t *testing.T) {
	res := FromAppointments([]entities.Appointment{
		{ID: "a1", Service: "Pantalla", Status: entities.AppointmentStatusProgramada},
	})
	if len(res) != 1 || res[0].ID != "a1" || res[0].Status != "Programada" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
