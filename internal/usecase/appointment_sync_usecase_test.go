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

func fillAppointmentForm(uc *AppointmentSyncUseCase) {
	f := uc.Form()
	f.SetCustomerName("Ana")
	f.SetCustomerPhone("5512345678")
	f.SetDate("2024-05-01")
	f.SetTime("10:30")
	f.SetService("Cambio de pantalla")
}

func TestAppointmentSyncUseCase_Submit(t *testing.T) {
	t.Run("books a Programada appointment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAppointmentStore(ctrl)
		uc := NewAppointmentSyncUseCase(store, nil)
		fillAppointmentForm(uc)

		store.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.Status != entities.AppointmentStatusProgramada {
					t.Fatalf("expected Programada, got %q", a.Status)
				}
				a.ID = "a1"
				return a, nil
			},
		)

		created, err := uc.Submit(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "a1" {
			t.Fatalf("unexpected appointment: %+v", created)
		}
		if uc.View().Total != 1 {
			t.Fatalf("expected the booking in the cache")
		}
		if uc.Form().State().Fields.CustomerName != "" {
			t.Fatalf("expected form reset")
		}
	})

	t.Run("failure keeps input and sets message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAppointmentStore(ctrl)
		uc := NewAppointmentSyncUseCase(store, nil)
		fillAppointmentForm(uc)

		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Appointment{}, interfaces.ErrNetworkFailure)

		if _, err := uc.Submit(context.Background()); !errors.Is(err, interfaces.ErrNetworkFailure) {
			t.Fatalf("expected ErrNetworkFailure, got %v", err)
		}
		st := uc.Form().State()
		if st.Error != MsgAppointmentBooking {
			t.Fatalf("expected %q, got %q", MsgAppointmentBooking, st.Error)
		}
		if st.Fields.CustomerName != "Ana" {
			t.Fatalf("expected input kept")
		}
		if uc.View().Total != 0 {
			t.Fatalf("expected empty cache")
		}
	})

	t.Run("reserved statuses are never sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAppointmentStore(ctrl)
		uc := NewAppointmentSyncUseCase(store, nil)

		store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.Status != entities.AppointmentStatusProgramada {
					t.Fatalf("expected Programada, got %q", a.Status)
				}
				a.ID = "a2"
				return a, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.Appointment{Status: entities.AppointmentStatusConfirmada}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAppointmentSyncUseCase_RefreshAndSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIAppointmentStore(ctrl)
	uc := NewAppointmentSyncUseCase(store, nil)

	store.EXPECT().List(gomock.Any()).Return([]entities.Appointment{
		{ID: "1", CustomerName: "Ana", Service: "Pantalla"},
		{ID: "2", CustomerName: "Pedro", Service: "Batería", Status: entities.AppointmentStatusCancelada},
	}, nil)

	if err := uc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := uc.Search("bat")
	if len(v.Appointments) != 1 || v.Appointments[0].ID != "2" {
		t.Fatalf("unexpected result: %+v", v.Appointments)
	}

	store.EXPECT().List(gomock.Any()).Return(nil, &interfaces.RejectionError{StatusCode: 503})
	if err := uc.Refresh(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if uc.LastError() != MsgAppointmentsLoad {
		t.Fatalf("expected %q, got %q", MsgAppointmentsLoad, uc.LastError())
	}
	if uc.View().Total != 2 {
		t.Fatalf("expected prior cache kept")
	}

	uc.Clear()
	if uc.View().Total != 0 || uc.LastError() != "" {
		t.Fatalf("expected cleared state")
	}
}
