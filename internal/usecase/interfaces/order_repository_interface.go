package interfaces

import (
	"context"
	"repair_tracker/internal/domain/entities"
)

// IOrderRepository abstracts persistence for the stand-in Record Store.
//
// The store must be able to:
//   - list orders in creation order
//   - create an order with a server-assigned id, refusing a taken order
//     number in the same write
//   - replace an order by id (order number is never rewritten)
//   - delete an order by id
//   - resolve an order by its order number
//
// Lookups that miss return a zero Order (empty ID) and a nil error, like the
// DynamoDB GetItem contract.
//
//go:generate mockgen -source=order_repository_interface.go -destination=mocks/mock_order_repository.go -package=mock_interfaces

type IOrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	Replace(ctx context.Context, o entities.Order) (entities.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}
