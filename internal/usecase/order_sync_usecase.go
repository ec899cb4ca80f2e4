package usecase

import (
	"context"
	"strings"
	"sync"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/collection"
	"repair_tracker/internal/usecase/form"
	"repair_tracker/internal/usecase/interfaces"
	"repair_tracker/internal/usecase/search"

	"go.uber.org/zap"
)

// OrderView is the filtered list the dashboard renders.
type OrderView struct {
	Query  string           `json:"query"`
	Orders []entities.Order `json:"orders"`
	Total  int              `json:"total"`
}

// IOrderSyncUseCase keeps a session's order cache in step with the Record Store.
//
// It is the only writer of the cache:
//   - Refresh   => GET /api/orders, then Load
//   - Create    => POST /api/orders, then Insert and form reset
//   - Update    => PUT /api/orders/{id}, then Replace and leave edit mode
//   - Remove    => confirmation, DELETE /api/orders/{id}, then Remove
//
// Failed calls never touch the cache and are never retried.

type IOrderSyncUseCase interface {
	Refresh(ctx context.Context) error
	Create(ctx context.Context, payload entities.Order) (entities.Order, error)
	Update(ctx context.Context, id string, payload entities.Order) (entities.Order, error)
	Remove(ctx context.Context, id string, confirmer interfaces.IConfirmer) error
	Submit(ctx context.Context) (entities.Order, error)
	BeginEdit(id string) error
	CancelEdit()
	Search(query string) OrderView
	View() OrderView
	Form() *form.OrderForm
	LastError() string
	Clear()
}

type OrderSyncUseCase struct {
	store  interfaces.IOrderStore
	cache  *collection.Collection[entities.Order]
	form   *form.OrderForm
	logger *zap.Logger

	mu      sync.Mutex
	query   string
	lastErr string
}

var _ IOrderSyncUseCase = (*OrderSyncUseCase)(nil)

func NewOrderSyncUseCase(store interfaces.IOrderStore, logger *zap.Logger) *OrderSyncUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderSyncUseCase{
		store:  store,
		cache:  collection.New[entities.Order](),
		form:   form.NewOrderForm(),
		logger: logger,
	}
}

func (u *OrderSyncUseCase) Refresh(ctx context.Context) error {
	u.logger.Debug("[order][sync] refresh start")

	orders, err := u.store.List(ctx)
	if err != nil {
		u.logger.Warn("[order][sync] refresh failed", zap.Error(err))
		u.setLastError(UserMessage(OpRefreshOrders, err))
		return err
	}

	u.cache.Load(orders)
	u.setLastError("")
	u.logger.Info("[order][sync] refresh done", zap.Int("count", len(orders)))
	return nil
}

func (u *OrderSyncUseCase) Create(ctx context.Context, payload entities.Order) (entities.Order, error) {
	payload.ID = ""
	u.logger.Debug("[order][sync] create start", zap.String("order_number", payload.OrderNumber))

	created, err := u.store.Create(ctx, payload)
	if err != nil {
		u.logger.Warn("[order][sync] create failed", zap.String("order_number", payload.OrderNumber), zap.Error(err))
		u.form.SetError(UserMessage(OpSubmitOrder, err))
		return entities.Order{}, err
	}

	if !u.cache.Insert(created) {
		u.logger.Warn("[order][sync] create returned an id already cached", zap.String("order_id", created.ID))
	}
	u.form.Reset()
	u.setLastError("")
	u.logger.Info("[order][sync] create done", zap.String("order_id", created.ID), zap.String("order_number", created.OrderNumber))
	return created, nil
}

func (u *OrderSyncUseCase) Update(ctx context.Context, id string, payload entities.Order) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	payload.ID = id
	u.logger.Debug("[order][sync] update start", zap.String("order_id", id))

	updated, err := u.store.Update(ctx, id, payload)
	if err != nil {
		u.logger.Warn("[order][sync] update failed", zap.String("order_id", id), zap.Error(err))
		u.form.SetError(UserMessage(OpSubmitOrder, err))
		return entities.Order{}, err
	}
	if updated.ID == "" {
		updated.ID = id
	}

	if !u.cache.Replace(id, updated) {
		u.logger.Warn("[order][sync] updated order is not cached", zap.String("order_id", id))
	}
	u.form.Reset()
	u.setLastError("")
	u.logger.Info("[order][sync] update done", zap.String("order_id", id), zap.String("status", string(updated.Status)))
	return updated, nil
}

// Remove asks confirmer first; a declined or failed confirmation sends nothing.
func (u *OrderSyncUseCase) Remove(ctx context.Context, id string, confirmer interfaces.IConfirmer) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}
	if confirmer == nil {
		return ErrRemoveNotConfirmed
	}
	ok, err := confirmer.Confirm(ctx, MsgRemoveConfirmPrompt)
	if err != nil {
		return err
	}
	if !ok {
		u.logger.Debug("[order][sync] remove declined", zap.String("order_id", id))
		return ErrRemoveNotConfirmed
	}

	u.logger.Debug("[order][sync] remove start", zap.String("order_id", id))
	if err := u.store.Delete(ctx, id); err != nil {
		u.logger.Warn("[order][sync] remove failed", zap.String("order_id", id), zap.Error(err))
		u.setLastError(UserMessage(OpRemoveOrder, err))
		return err
	}

	u.cache.Remove(id)
	if u.form.EditingID() == id {
		u.form.Reset()
	}
	u.setLastError("")
	u.logger.Info("[order][sync] remove done", zap.String("order_id", id))
	return nil
}

// Submit sends the form as a create, or as an update while editing.
func (u *OrderSyncUseCase) Submit(ctx context.Context) (entities.Order, error) {
	payload, err := u.form.Submit()
	if err != nil {
		u.form.SetError(UserMessage(OpSubmitOrder, err))
		return entities.Order{}, err
	}
	if id := u.form.EditingID(); id != "" {
		return u.Update(ctx, id, payload)
	}
	return u.Create(ctx, payload)
}

func (u *OrderSyncUseCase) BeginEdit(id string) error {
	o, ok := u.cache.Get(strings.TrimSpace(id))
	if !ok {
		return ErrOrderNotFound
	}
	u.form.BeginEdit(o)
	return nil
}

// CancelEdit leaves edit mode without contacting the Record Store.
func (u *OrderSyncUseCase) CancelEdit() {
	u.form.Reset()
}

// Search stores query and returns the matching view. The query stays in
// effect for later calls to View.
func (u *OrderSyncUseCase) Search(query string) OrderView {
	u.mu.Lock()
	u.query = query
	u.mu.Unlock()
	return u.View()
}

// View filters the current cache with the stored query.
func (u *OrderSyncUseCase) View() OrderView {
	u.mu.Lock()
	q := u.query
	u.mu.Unlock()

	all := u.cache.Snapshot()
	return OrderView{Query: q, Orders: search.Orders(all, q), Total: len(all)}
}

func (u *OrderSyncUseCase) Form() *form.OrderForm {
	return u.form
}

func (u *OrderSyncUseCase) LastError() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastErr
}

// Clear discards the cache and all view state.
func (u *OrderSyncUseCase) Clear() {
	u.cache.Clear()
	u.form.Reset()
	u.mu.Lock()
	u.query = ""
	u.lastErr = ""
	u.mu.Unlock()
}

func (u *OrderSyncUseCase) setLastError(msg string) {
	u.mu.Lock()
	u.lastErr = msg
	u.mu.Unlock()
}
