package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase"
	"repair_tracker/internal/usecase/interfaces"
	mock_interfaces "repair_tracker/internal/usecase/interfaces/mocks"
	"repair_tracker/internal/usecase/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type webFixture struct {
	router       *gin.Engine
	auth         *mock_interfaces.MockIAuthenticator
	orders       *mock_interfaces.MockIOrderStore
	appointments *mock_interfaces.MockIAppointmentStore
	cookie       *http.Cookie
}

type webBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	State session.State `json:"state"`
}

func newWebFixture(t *testing.T) *webFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &webFixture{
		auth:         mock_interfaces.NewMockIAuthenticator(ctrl),
		orders:       mock_interfaces.NewMockIOrderStore(ctrl),
		appointments: mock_interfaces.NewMockIAppointmentStore(ctrl),
	}
	h := NewWebHandler(session.NewManager(f.auth, f.orders, f.appointments, zap.NewNop()), zap.NewNop(), false)

	r := gin.New()
	app := r.Group("/app", h.Session())
	app.GET("/state", h.GetState)
	app.POST("/navigate", h.Navigate)
	app.POST("/login", h.Login)
	app.POST("/logout", h.Logout)
	app.POST("/status", h.LookupStatus)
	app.PUT("/appointments/form", h.UpdateAppointmentForm)
	app.POST("/appointments/form/submit", h.SubmitAppointmentForm)
	staff := app.Group("", h.RequireLogin())
	staff.GET("/orders", h.SearchOrders)
	staff.PUT("/orders/form", h.UpdateOrderForm)
	staff.POST("/orders/form/submit", h.SubmitOrderForm)
	staff.POST("/orders/:"+ParamOrderID+"/edit", h.EditOrder)
	staff.DELETE("/orders/:"+ParamOrderID, h.RemoveOrder)
	staff.GET("/orders/export", h.ExportOrders)
	f.router = r
	return f
}

func (f *webFixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, webBody) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if f.cookie != nil {
		req.AddCookie(f.cookie)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName {
			f.cookie = c
		}
	}
	var parsed webBody
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	}
	return w, parsed
}

func (f *webFixture) login(t *testing.T, orders []entities.Order) {
	t.Helper()
	f.auth.EXPECT().Authenticate(gomock.Any(), "admin", "secret").Return(interfaces.Identity{Username: "admin"}, nil)
	f.orders.EXPECT().List(gomock.Any()).Return(orders, nil)
	w, body := f.do(t, http.MethodPost, "/app/login", `{"username":"admin","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body.State.Screen != session.ScreenOrders {
		t.Fatalf("expected dashboard after login, got %s", body.State.Screen)
	}
}

var webOrders = []entities.Order{
	{ID: "1", OrderNumber: "n1", Brand: "Samsung", Model: "A52", CustomerName: "Ana Pérez", Status: entities.OrderStatusEnProceso},
	{ID: "2", OrderNumber: "n2", Brand: "LG", Model: "K40", CustomerName: "Luis", Status: entities.OrderStatusReparado},
	{ID: "3", OrderNumber: "n3", Brand: "Motorola", Model: "G8", CustomerName: "Mariana", Status: entities.OrderStatusEnProceso},
}

func TestWebHandler_SessionCookie(t *testing.T) {
	f := newWebFixture(t)

	w, body := f.do(t, http.MethodGet, "/app/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if f.cookie == nil || f.cookie.Value == "" {
		t.Fatalf("expected session cookie to be set")
	}
	if body.State.Screen != session.ScreenHome || body.State.ID != f.cookie.Value {
		t.Fatalf("unexpected initial state: %+v", body.State)
	}

	first := f.cookie.Value
	_, body = f.do(t, http.MethodGet, "/app/state", "")
	if body.State.ID != first {
		t.Fatalf("expected the same session, got %s and %s", first, body.State.ID)
	}
}

func TestWebHandler_StaffEndpointsNeedLogin(t *testing.T) {
	f := newWebFixture(t)

	w, body := f.do(t, http.MethodGet, "/app/orders", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body.Error == nil || body.Error.Code != "LOGIN_REQUIRED" {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}

	w, _ = f.do(t, http.MethodPost, "/app/navigate", `{"screen":"ordenes"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 navigating to dashboard, got %d", w.Code)
	}
}

func TestWebHandler_Login(t *testing.T) {
	t.Run("wrong credentials", func(t *testing.T) {
		f := newWebFixture(t)
		f.auth.EXPECT().Authenticate(gomock.Any(), "admin", "bad").Return(interfaces.Identity{}, interfaces.ErrInvalidCredentials)

		w, body := f.do(t, http.MethodPost, "/app/login", `{"username":"admin","password":"bad"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if body.State.LoginError != usecase.MsgInvalidCredentials {
			t.Fatalf("expected login error message, got %q", body.State.LoginError)
		}
	})

	t.Run("success loads orders and search filters them", func(t *testing.T) {
		f := newWebFixture(t)
		f.login(t, webOrders)

		w, body := f.do(t, http.MethodGet, "/app/orders?q=ana", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		got := body.State.Orders.Orders
		if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
			t.Fatalf("expected orders [1 3], got %+v", got)
		}
		if body.State.Orders.Total != 3 {
			t.Fatalf("expected total 3, got %d", body.State.Orders.Total)
		}
	})

	t.Run("logout clears the dashboard", func(t *testing.T) {
		f := newWebFixture(t)
		f.login(t, webOrders)

		_, body := f.do(t, http.MethodPost, "/app/logout", "")
		if body.State.Screen != session.ScreenHome || body.State.Orders.Total != 0 {
			t.Fatalf("unexpected state after logout: %+v", body.State)
		}
	})
}

func TestWebHandler_OrderForm(t *testing.T) {
	t.Run("rejected phone", func(t *testing.T) {
		f := newWebFixture(t)
		f.login(t, nil)

		w, body := f.do(t, http.MethodPut, "/app/orders/form", `{"customerPhone":"55-12"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body.Error == nil || body.Error.Message != usecase.MsgIncompleteForm {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("incomplete submit makes no call", func(t *testing.T) {
		f := newWebFixture(t)
		f.login(t, nil)

		w, body := f.do(t, http.MethodPost, "/app/orders/form/submit", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body.State.OrderForm.Error != usecase.MsgIncompleteForm {
			t.Fatalf("expected form error, got %q", body.State.OrderForm.Error)
		}
	})

	t.Run("create appends to the list", func(t *testing.T) {
		f := newWebFixture(t)
		f.login(t, nil)

		fields := `{"brand":"Samsung","model":"A52","repairType":"Pantalla","cost":"150","customerName":"Ana","customerPhone":"5551234","customerAddress":"Calle 1"}`
		if w, _ := f.do(t, http.MethodPut, "/app/orders/form", fields); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, o entities.Order) (entities.Order, error) {
			if o.OrderNumber == "" || o.Cost != 150 || o.Status != entities.OrderStatusEnProceso {
				t.Fatalf("unexpected payload %+v", o)
			}
			o.ID = "new-1"
			return o, nil
		})
		w, body := f.do(t, http.MethodPost, "/app/orders/form/submit", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if len(body.State.Orders.Orders) != 1 || body.State.Orders.Orders[0].ID != "new-1" {
			t.Fatalf("expected created order in list, got %+v", body.State.Orders.Orders)
		}
		if body.State.OrderForm.Fields.Brand != "" {
			t.Fatalf("expected form reset, got %+v", body.State.OrderForm.Fields)
		}
	})

	t.Run("edit unknown order", func(t *testing.T) {
		f := newWebFixture(t)
		f.login(t, webOrders)

		w, _ := f.do(t, http.MethodPost, "/app/orders/zz/edit", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("edit seeds the form", func(t *testing.T) {
		f := newWebFixture(t)
		f.login(t, webOrders)

		_, body := f.do(t, http.MethodPost, "/app/orders/2/edit", "")
		if body.State.OrderForm.Editing == nil || body.State.OrderForm.Editing.ID != "2" {
			t.Fatalf("expected edit mode for 2, got %+v", body.State.OrderForm)
		}
		if body.State.OrderForm.Fields.Brand != "LG" {
			t.Fatalf("expected seeded fields, got %+v", body.State.OrderForm.Fields)
		}
	})
}

func TestWebHandler_RemoveOrder(t *testing.T) {
	t.Run("without confirmation", func(t *testing.T) {
		f := newWebFixture(t)
		f.login(t, webOrders)

		w, body := f.do(t, http.MethodDelete, "/app/orders/2", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body.Error == nil || body.Error.Message != usecase.MsgRemoveConfirmPrompt {
			t.Fatalf("expected confirmation prompt, got %s", w.Body.String())
		}
		if body.State.Orders.Total != 3 {
			t.Fatalf("expected cache untouched, got %d", body.State.Orders.Total)
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		f := newWebFixture(t)
		f.login(t, webOrders)
		f.orders.EXPECT().Delete(gomock.Any(), "2").Return(nil)

		w, body := f.do(t, http.MethodDelete, "/app/orders/2?confirm=true", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		got := body.State.Orders.Orders
		if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
			t.Fatalf("expected [1 3], got %+v", got)
		}
	})

	t.Run("store unreachable", func(t *testing.T) {
		f := newWebFixture(t)
		f.login(t, webOrders)
		f.orders.EXPECT().Delete(gomock.Any(), "2").Return(interfaces.ErrNetworkFailure)

		w, body := f.do(t, http.MethodDelete, "/app/orders/2?confirm=true", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if body.State.OrdersError != usecase.MsgOrderRemove || body.State.Orders.Total != 3 {
			t.Fatalf("unexpected state: %+v", body.State)
		}
	})
}

func TestWebHandler_LookupStatus(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newWebFixture(t)
		f.orders.EXPECT().GetByOrderNumber(gomock.Any(), "n2").Return(webOrders[1], nil)

		w, body := f.do(t, http.MethodPost, "/app/status", `{"orderNumber":" n2 "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body.State.Lookup.Order == nil || body.State.Lookup.Order.Status != entities.OrderStatusReparado {
			t.Fatalf("unexpected lookup: %+v", body.State.Lookup)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newWebFixture(t)
		f.orders.EXPECT().GetByOrderNumber(gomock.Any(), "zz").Return(entities.Order{}, &interfaces.RejectionError{StatusCode: http.StatusNotFound})

		w, body := f.do(t, http.MethodPost, "/app/status", `{"orderNumber":"zz"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body.State.Lookup.Error != usecase.MsgOrderNotFound {
			t.Fatalf("expected not found message, got %q", body.State.Lookup.Error)
		}
	})

	t.Run("empty order number makes no call", func(t *testing.T) {
		f := newWebFixture(t)

		w, _ := f.do(t, http.MethodPost, "/app/status", `{"orderNumber":""}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWebHandler_BookAppointment(t *testing.T) {
	f := newWebFixture(t)

	fields := `{"customerName":"Ana","customerPhone":"5551234","appointmentDate":"2024-06-01","appointmentTime":"10:30","service":"Pantalla"}`
	if w, _ := f.do(t, http.MethodPut, "/app/appointments/form", fields); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	f.appointments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, a entities.Appointment) (entities.Appointment, error) {
		if a.Status != entities.AppointmentStatusProgramada || a.AppointmentTime != "10:30" {
			t.Fatalf("unexpected payload %+v", a)
		}
		a.ID = "a1"
		return a, nil
	})
	w, body := f.do(t, http.MethodPost, "/app/appointments/form/submit", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body.State.AppointmentForm.Fields.CustomerName != "" {
		t.Fatalf("expected form reset after booking, got %+v", body.State.AppointmentForm.Fields)
	}
}

func TestWebHandler_ExportOrders(t *testing.T) {
	t.Run("pdf", func(t *testing.T) {
		f := newWebFixture(t)
		f.login(t, webOrders)

		w, _ := f.do(t, http.MethodGet, "/app/orders/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
			t.Fatalf("expected a PDF document")
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), "attachment") {
			t.Fatalf("expected attachment disposition, got %q", w.Header().Get("Content-Disposition"))
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		f := newWebFixture(t)
		f.login(t, webOrders)

		w, _ := f.do(t, http.MethodGet, "/app/orders/export?format=csv", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
