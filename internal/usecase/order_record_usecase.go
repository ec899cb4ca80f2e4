package usecase

import (
	"context"
	"errors"
	"strings"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IOrderRecordUseCase exposes the order endpoints of the stand-in Record Store.
//
// These operations map to the REST surface consumed by the web client:
//   - GET    /api/orders                => List()
//   - POST   /api/orders                => Create()
//   - PUT    /api/orders/{id}           => Update()
//   - DELETE /api/orders/{id}           => Delete()
//   - GET    /api/orders/{orderNumber}  => GetByOrderNumber()

type IOrderRecordUseCase interface {
	List(ctx context.Context) ([]entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Update(ctx context.Context, id string, o entities.Order) (entities.Order, error)
	Delete(ctx context.Context, id string) error
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error)
}

type OrderRecordUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderRecordUseCase = (*OrderRecordUseCase)(nil)

func NewOrderRecordUseCase(repo interfaces.IOrderRepository) *OrderRecordUseCase {
	return &OrderRecordUseCase{repo: repo}
}

func (u *OrderRecordUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

func (u *OrderRecordUseCase) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.OrderNumber = strings.TrimSpace(o.OrderNumber)
	if o.OrderNumber == "" {
		return entities.Order{}, ErrInvalidOrderNumber
	}
	if o.Status == "" {
		o.Status = entities.OrderStatusEnProceso
	}
	if err := checkOrder(o); err != nil {
		return entities.Order{}, err
	}

	// The repository refuses a taken order number in the same write.
	o.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, o)
	if errors.Is(err, interfaces.ErrOrderNumberExists) {
		return entities.Order{}, ErrOrderNumberTaken
	}
	return created, err
}

// Update replaces every field except id and order number, which always keep
// their stored values.
func (u *OrderRecordUseCase) Update(ctx context.Context, id string, o entities.Order) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if err := checkOrder(o); err != nil {
		return entities.Order{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	o.ID = existing.ID
	o.OrderNumber = existing.OrderNumber
	updated, err := u.repo.Replace(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderRecordUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOrderNotFound
	}
	return nil
}

func (u *OrderRecordUseCase) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.Order{}, ErrInvalidOrderNumber
	}

	o, err := u.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func checkOrder(o entities.Order) error {
	if !o.Status.Valid() || o.Cost < 0 {
		return ErrInvalidOrderPayload
	}
	return nil
}
