package response

import "repair_tracker/internal/domain/entities"

// OrderResponse is the Record Store wire shape of an order.
type OrderResponse struct {
	ID              string  `json:"_id"`
	OrderNumber     string  `json:"orderNumber"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	RepairType      string  `json:"repairType"`
	Cost            float64 `json:"cost"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	Status          string  `json:"status"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		Brand:           o.Brand,
		Model:           o.Model,
		RepairType:      o.RepairType,
		Cost:            o.Cost,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Status:          string(o.Status),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
