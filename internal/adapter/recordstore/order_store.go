package recordstore

import (
	"context"
	"net/http"
	"net/url"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/interfaces"
)

// OrderStore is the HTTP implementation of interfaces.IOrderStore.
type OrderStore struct {
	c *Client
}

var _ interfaces.IOrderStore = (*OrderStore)(nil)

func (s *OrderStore) List(ctx context.Context) ([]entities.Order, error) {
	var out []entities.Order
	if err := s.c.do(ctx, "orders.list", http.MethodGet, pathOrders, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Order{}
	}
	return out, nil
}

func (s *OrderStore) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.ID = ""
	var out entities.Order
	if err := s.c.do(ctx, "orders.create", http.MethodPost, pathOrders, o, &out); err != nil {
		return entities.Order{}, err
	}
	return out, nil
}

func (s *OrderStore) Update(ctx context.Context, id string, o entities.Order) (entities.Order, error) {
	var out entities.Order
	if err := s.c.do(ctx, "orders.update", http.MethodPut, pathOrders+"/"+url.PathEscape(id), o, &out); err != nil {
		return entities.Order{}, err
	}
	return out, nil
}

func (s *OrderStore) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, "orders.delete", http.MethodDelete, pathOrders+"/"+url.PathEscape(id), nil, nil)
}

// GetByOrderNumber resolves an order by its customer-facing number. A 404
// answer matches interfaces.ErrRecordNotFound.
func (s *OrderStore) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	var out entities.Order
	if err := s.c.do(ctx, "orders.get_by_number", http.MethodGet, pathOrders+"/"+url.PathEscape(orderNumber), nil, &out); err != nil {
		return entities.Order{}, err
	}
	return out, nil
}
