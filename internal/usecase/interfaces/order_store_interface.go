package interfaces

import (
	"context"
	"repair_tracker/internal/domain/entities"
)

// IOrderStore abstracts the Record Store order endpoints.
//
// Two key spaces are exposed on purpose:
//   - Update/Delete address an order by its server id
//   - GetByOrderNumber addresses it by the customer-facing order number
//
//go:generate mockgen -source=order_store_interface.go -destination=mocks/mock_order_store.go -package=mock_interfaces

type IOrderStore interface {
	List(ctx context.Context) ([]entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Update(ctx context.Context, id string, o entities.Order) (entities.Order, error)
	Delete(ctx context.Context, id string) error
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error)
}
