package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"repair_tracker/internal/adapter/http/handlers/mocks"
	"repair_tracker/internal/domain/entities"
	"repair_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const validOrderBody = `{"orderNumber":"000000abc","brand":"Samsung","model":"A52","repairType":"Pantalla","cost":150,"customerName":"Ana","customerPhone":"5551234","customerAddress":"Calle 1","status":"En proceso"}`

func newOrderRouter(uc *mocks.MockIOrderRecordUseCase) *gin.Engine {
	h := NewOrderRecordHandler(uc, zap.NewNop())
	r := gin.New()
	r.GET("/api/orders", h.ListOrders)
	r.POST("/api/orders", h.CreateOrder)
	r.PUT("/api/orders/:"+ParamOrderKey, h.UpdateOrder)
	r.DELETE("/api/orders/:"+ParamOrderKey, h.DeleteOrder)
	r.GET("/api/orders/:"+ParamOrderKey, h.GetOrderByNumber)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOrderRecordHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty list is an array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderRecordUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := serve(newOrderRouter(uc), http.MethodGet, "/api/orders", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderRecordUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

		w := serve(newOrderRouter(uc), http.MethodGet, "/api/orders", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOrderRecordHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderRecordUseCase(ctrl)

		w := serve(newOrderRouter(uc), http.MethodPost, "/api/orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderRecordUseCase(ctrl)

		w := serve(newOrderRouter(uc), http.MethodPost, "/api/orders", `{"brand":"LG"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate order number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderRecordUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrOrderNumberTaken)

		w := serve(newOrderRouter(uc), http.MethodPost, "/api/orders", validOrderBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderRecordUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, o entities.Order) (entities.Order, error) {
			if o.ID != "" || o.OrderNumber != "000000abc" || o.Cost != 150 {
				t.Fatalf("unexpected order passed to use case: %+v", o)
			}
			o.ID = "id-1"
			return o, nil
		})

		w := serve(newOrderRouter(uc), http.MethodPost, "/api/orders", validOrderBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["_id"] != "id-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOrderRecordHandler_UpdateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderRecordUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), "id-1", gomock.Any()).Return(entities.Order{}, usecase.ErrOrderNotFound)

		w := serve(newOrderRouter(uc), http.MethodPut, "/api/orders/id-1", validOrderBody)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderRecordUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), "id-1", gomock.Any()).Return(entities.Order{ID: "id-1", Status: entities.OrderStatusReparado}, nil)

		w := serve(newOrderRouter(uc), http.MethodPut, "/api/orders/id-1", validOrderBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderRecordHandler_DeleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success has no body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderRecordUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "id-1").Return(nil)

		w := serve(newOrderRouter(uc), http.MethodDelete, "/api/orders/id-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderRecordUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "id-1").Return(usecase.ErrOrderNotFound)

		w := serve(newOrderRouter(uc), http.MethodDelete, "/api/orders/id-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderRecordHandler_GetOrderByNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found by order number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderRecordUseCase(ctrl)
		uc.EXPECT().GetByOrderNumber(gomock.Any(), "000000abc").Return(entities.Order{ID: "id-1", OrderNumber: "000000abc", Status: entities.OrderStatusReparado}, nil)

		w := serve(newOrderRouter(uc), http.MethodGet, "/api/orders/000000abc", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "Reparado" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown order number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderRecordUseCase(ctrl)
		uc.EXPECT().GetByOrderNumber(gomock.Any(), "nope").Return(entities.Order{}, usecase.ErrOrderNotFound)

		w := serve(newOrderRouter(uc), http.MethodGet, "/api/orders/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
