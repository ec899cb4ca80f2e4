package repository

import (
	"context"
	"sync"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/interfaces"
)

// OrderMemoryRepository keeps orders in process memory, in insertion order.
// It backs local runs and tests of the stand-in Record Store.
type OrderMemoryRepository struct {
	mu       sync.RWMutex
	orders   []entities.Order
	byID     map[string]int
	byNumber map[string]string
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{byID: make(map[string]int), byNumber: make(map[string]string)}
}

func (r *OrderMemoryRepository) List(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *OrderMemoryRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[o.ID]; ok {
		return entities.Order{}, interfaces.ErrRecordExists
	}
	if _, ok := r.byNumber[o.OrderNumber]; ok {
		return entities.Order{}, interfaces.ErrOrderNumberExists
	}
	r.byID[o.ID] = len(r.orders)
	r.byNumber[o.OrderNumber] = o.ID
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i, ok := r.byID[id]; ok {
		return r.orders[i], nil
	}
	return entities.Order{}, nil
}

func (r *OrderMemoryRepository) GetByOrderNumber(_ context.Context, orderNumber string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, ok := r.byNumber[orderNumber]; ok {
		return r.orders[r.byID[id]], nil
	}
	return entities.Order{}, nil
}

func (r *OrderMemoryRepository) Replace(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.byID[o.ID]
	if !ok {
		return entities.Order{}, nil
	}
	o.OrderNumber = r.orders[i].OrderNumber
	r.orders[i] = o
	return o, nil
}

func (r *OrderMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	delete(r.byNumber, r.orders[i].OrderNumber)
	r.orders = append(r.orders[:i], r.orders[i+1:]...)
	delete(r.byID, id)
	for j := i; j < len(r.orders); j++ {
		r.byID[r.orders[j].ID] = j
	}
	return true, nil
}
