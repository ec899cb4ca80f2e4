package usecase

import (
	"context"
	"errors"
	"testing"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/interfaces"
	mock_interfaces "repair_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStatusLookupUseCase_Lookup(t *testing.T) {
	t.Run("empty order number sends nothing", func(t *testing.T) {
		uc := NewStatusLookupUseCase(nil, nil)
		_, err := uc.Lookup(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderNumber) {
			t.Fatalf("expected ErrInvalidOrderNumber, got %v", err)
		}
	})

	t.Run("miss surfaces not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewStatusLookupUseCase(store, nil)

		store.EXPECT().GetByOrderNumber(gomock.Any(), "zz9").Return(entities.Order{}, &interfaces.RejectionError{StatusCode: 404})

		o, err := uc.Lookup(context.Background(), "zz9")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
		if o.ID != "" {
			t.Fatalf("expected no order, got %+v", o)
		}
		if msg := UserMessage(OpStatusLookup, err); msg != MsgOrderNotFound {
			t.Fatalf("expected %q, got %q", MsgOrderNotFound, msg)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewStatusLookupUseCase(store, nil)

		store.EXPECT().GetByOrderNumber(gomock.Any(), "x1").Return(entities.Order{}, interfaces.ErrNetworkFailure)

		_, err := uc.Lookup(context.Background(), "x1")
		if !errors.Is(err, interfaces.ErrNetworkFailure) {
			t.Fatalf("expected ErrNetworkFailure, got %v", err)
		}
		if msg := UserMessage(OpStatusLookup, err); msg != MsgOrderLookup {
			t.Fatalf("expected %q, got %q", MsgOrderLookup, msg)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewStatusLookupUseCase(store, nil)

		store.EXPECT().GetByOrderNumber(gomock.Any(), "x1").Return(entities.Order{ID: "1", OrderNumber: "x1", Status: entities.OrderStatusReparado}, nil)

		o, err := uc.Lookup(context.Background(), " x1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OrderStatusReparado {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		op   Operation
		err  error
		want string
	}{
		{OpSubmitOrder, interfaces.ErrNetworkFailure, MsgOrderProcessing},
		{OpRemoveOrder, interfaces.ErrNetworkFailure, MsgOrderRemove},
		{OpRefreshOrders, interfaces.ErrServerRejection, MsgOrdersLoad},
		{OpStatusLookup, interfaces.ErrRecordNotFound, MsgOrderNotFound},
		{OpBookAppointment, interfaces.ErrServerRejection, MsgAppointmentBooking},
		{OpLogin, interfaces.ErrInvalidCredentials, MsgInvalidCredentials},
		{OpSubmitOrder, nil, ""},
	}
	for _, tc := range cases {
		if got := UserMessage(tc.op, tc.err); got != tc.want {
			t.Fatalf("op %d err %v: expected %q, got %q", tc.op, tc.err, tc.want, got)
		}
	}
}
