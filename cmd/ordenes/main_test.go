package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"repair_tracker/internal/config"
	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase/interfaces"
	mock_interfaces "repair_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ee *exitErr
	if !errors.As(err, &ee) {
		t.Fatalf("expected exitErr, got %v", err)
	}
	return ee.code
}

func TestRunExport(t *testing.T) {
	orders := []entities.Order{
		{ID: "1", Brand: "Samsung", CustomerName: "Ana"},
		{ID: "2", Brand: "LG", CustomerName: "Luis"},
	}

	t.Run("writes the filtered list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		store.EXPECT().List(gomock.Any()).Return(orders, nil)

		out := filepath.Join(t.TempDir(), "ordenes.xlsx")
		var stdout bytes.Buffer
		err := runExport(context.Background(), store, exportFlags{format: "xlsx", query: "lg", out: out}, &stdout)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.HasPrefix(stdout.String(), "1 órdenes exportadas") {
			t.Fatalf("unexpected output %q", stdout.String())
		}
		if info, err := os.Stat(out); err != nil || info.Size() == 0 {
			t.Fatalf("expected a non-empty file, got %v", err)
		}
	})

	t.Run("bad format makes no call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)

		err := runExport(context.Background(), store, exportFlags{format: "csv"}, &bytes.Buffer{})
		if code := exitCode(t, err); code != exitBadInput {
			t.Fatalf("expected exit %d, got %d", exitBadInput, code)
		}
	})

	t.Run("record store down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		store.EXPECT().List(gomock.Any()).Return(nil, interfaces.ErrNetworkFailure)

		err := runExport(context.Background(), store, exportFlags{format: "pdf"}, &bytes.Buffer{})
		if code := exitCode(t, err); code != exitRecordStore {
			t.Fatalf("expected exit %d, got %d", exitRecordStore, code)
		}
	})
}

func TestRunStatus(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		store.EXPECT().GetByOrderNumber(gomock.Any(), "abc").Return(entities.Order{ID: "1", OrderNumber: "abc", Status: entities.OrderStatusReparado}, nil)

		var stdout bytes.Buffer
		if err := runStatus(context.Background(), store, "abc", &stdout); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(stdout.String(), "Estado: Reparado") {
			t.Fatalf("unexpected output %q", stdout.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		store.EXPECT().GetByOrderNumber(gomock.Any(), "zz").Return(entities.Order{}, &interfaces.RejectionError{StatusCode: 404})

		err := runStatus(context.Background(), store, "zz", &bytes.Buffer{})
		if code := exitCode(t, err); code != exitNotFound {
			t.Fatalf("expected exit %d, got %d", exitNotFound, code)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		store.EXPECT().GetByOrderNumber(gomock.Any(), "zz").Return(entities.Order{}, interfaces.ErrNetworkFailure)

		err := runStatus(context.Background(), store, "zz", &bytes.Buffer{})
		if code := exitCode(t, err); code != exitRecordStore {
			t.Fatalf("expected exit %d, got %d", exitRecordStore, code)
		}
	})
}

func TestRunAppointments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIAppointmentStore(ctrl)
	store.EXPECT().List(gomock.Any()).Return([]entities.Appointment{
		{ID: "1", CustomerName: "Ana", Service: "Pantalla", AppointmentDate: "2024-06-01", AppointmentTime: "10:30", Status: entities.AppointmentStatusProgramada},
		{ID: "2", CustomerName: "Luis", Service: "Batería", AppointmentDate: "2024-06-02", AppointmentTime: "11:00", Status: entities.AppointmentStatusProgramada},
	}, nil)

	var stdout bytes.Buffer
	if err := runAppointments(context.Background(), store, "pantalla", &stdout); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "Ana") || strings.Contains(out, "Luis") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNewRootCmd_StatusNeedsArgument(t *testing.T) {
	root := newRootCmd(config.Config{APIURL: "http://localhost:4000"}, &bytes.Buffer{})
	root.SetArgs([]string{"status"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected an argument error")
	}
}
