package form

import (
	"testing"

	"repair_tracker/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestAppointmentForm(t *testing.T) {
	t.Run("defaults to Programada", func(t *testing.T) {
		st := NewAppointmentForm().State()
		require.Equal(t, entities.AppointmentStatusProgramada, st.Status)
		require.Equal(t, AppointmentFields{}, st.Fields)
	})

	t.Run("submit builds a Programada appointment", func(t *testing.T) {
		f := NewAppointmentForm()
		require.NoError(t, f.Apply(AppointmentFields{
			CustomerName:    "Ana",
			CustomerPhone:   "5512345678",
			AppointmentDate: "2024-05-01",
			AppointmentTime: "10:30",
			Service:         "Cambio de pantalla",
		}))

		a, err := f.Submit()
		require.NoError(t, err)
		require.Empty(t, a.ID)
		require.Equal(t, entities.AppointmentStatusProgramada, a.Status)
		require.Equal(t, "2024-05-01", a.AppointmentDate)
	})

	t.Run("no date plausibility checks", func(t *testing.T) {
		f := NewAppointmentForm()
		require.NoError(t, f.Apply(AppointmentFields{
			CustomerName: "Ana", CustomerPhone: "1", AppointmentDate: "1900-99-99",
			AppointmentTime: "99:99", Service: "x",
		}))
		_, err := f.Submit()
		require.NoError(t, err)
	})

	t.Run("rejects non digit phone", func(t *testing.T) {
		f := NewAppointmentForm()
		err := f.Apply(AppointmentFields{CustomerPhone: "55-12"})
		require.ErrorIs(t, err, ErrRejectedInput)
		require.Empty(t, f.State().Fields.CustomerPhone)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := NewAppointmentForm()
		f.SetCustomerName("Ana")
		_, err := f.Submit()
		require.ErrorIs(t, err, ErrIncompleteForm)
	})

	t.Run("reset clears error", func(t *testing.T) {
		f := NewAppointmentForm()
		f.SetService("x")
		f.SetError("No se pudo agendar la cita. Intente nuevamente.")
		f.Reset()
		require.Empty(t, f.Error())
		require.Empty(t, f.State().Fields.Service)
	})
}
