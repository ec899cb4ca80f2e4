package request

import (
	"strings"

	"repair_tracker/internal/domain/entities"
)

// OrderRequest is the body of POST /api/orders and PUT /api/orders/{id}.
//
// _id is ignored on both: the store assigns it on create and takes it from
// the path on update. orderNumber is only read on create.
type OrderRequest struct {
	ID              string   `json:"_id"`
	OrderNumber     string   `json:"orderNumber"`
	Brand           string   `json:"brand" binding:"required"`
	Model           string   `json:"model" binding:"required"`
	RepairType      string   `json:"repairType" binding:"required"`
	Cost            *float64 `json:"cost" binding:"required"`
	CustomerName    string   `json:"customerName" binding:"required"`
	CustomerPhone   string   `json:"customerPhone" binding:"required"`
	CustomerAddress string   `json:"customerAddress" binding:"required"`
	Status          string   `json:"status"`
}

func (r OrderRequest) ToEntity() entities.Order {
	o := entities.Order{
		OrderNumber:     strings.TrimSpace(r.OrderNumber),
		Brand:           r.Brand,
		Model:           r.Model,
		RepairType:      r.RepairType,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		Status:          entities.OrderStatus(strings.TrimSpace(r.Status)),
	}
	if r.Cost != nil {
		o.Cost = *r.Cost
	}
	return o
}
