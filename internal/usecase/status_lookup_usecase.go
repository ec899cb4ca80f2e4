package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IStatusLookupUseCase answers the public "where is my repair" screen.
// Lookups are keyed by order number, never by id.

type IStatusLookupUseCase interface {
	Lookup(ctx context.Context, orderNumber string) (entities.Order, error)
}

type StatusLookupUseCase struct {
	store  interfaces.IOrderStore
	logger *zap.Logger
}

var _ IStatusLookupUseCase = (*StatusLookupUseCase)(nil)

func NewStatusLookupUseCase(store interfaces.IOrderStore, logger *zap.Logger) *StatusLookupUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusLookupUseCase{store: store, logger: logger}
}

func (u *StatusLookupUseCase) Lookup(ctx context.Context, orderNumber string) (entities.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.Order{}, ErrInvalidOrderNumber
	}

	o, err := u.store.GetByOrderNumber(ctx, orderNumber)
	switch {
	case errors.Is(err, interfaces.ErrRecordNotFound):
		u.logger.Info("[order][lookup] not found", zap.String("order_number", orderNumber))
		return entities.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderNumber)
	case err != nil:
		u.logger.Warn("[order][lookup] failed", zap.String("order_number", orderNumber), zap.Error(err))
		return entities.Order{}, err
	case o.ID == "" && o.OrderNumber == "":
		return entities.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderNumber)
	}
	return o, nil
}
