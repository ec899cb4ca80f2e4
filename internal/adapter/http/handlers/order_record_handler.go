package handlers

import (
	"errors"
	"net/http"

	request "repair_tracker/internal/adapter/http/dto/request"
	response "repair_tracker/internal/adapter/http/dto/response"
	"repair_tracker/internal/usecase"
	"repair_tracker/internal/usecase/interfaces"
	"repair_tracker/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ParamOrderKey names the path segment after /api/orders. It holds an id for
// PUT and DELETE and an order number for GET.
const ParamOrderKey = "key"

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderRecordHandler serves the order endpoints of the stand-in Record Store.

type OrderRecordHandler struct {
	usecase usecase.IOrderRecordUseCase
	logger  *zap.Logger
}

func NewOrderRecordHandler(uc usecase.IOrderRecordUseCase, logger *zap.Logger) *OrderRecordHandler {
	return &OrderRecordHandler{usecase: uc, logger: logger}
}

// ListOrders godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {array} response.OrderResponse
// @Router /api/orders [get]
func (h *OrderRecordHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// CreateOrder godoc
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body request.OrderRequest true "Order"
// @Success 201 {object} response.OrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /api/orders [post]
func (h *OrderRecordHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	h.logger.Info("[order][store] created", zap.String("order_id", created.ID), zap.String("order_number", created.OrderNumber))
	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// UpdateOrder godoc
// @Summary Replace an order by id
// @Tags orders
// @Accept json
// @Produce json
// @Param key path string true "Order id"
// @Param order body request.OrderRequest true "Order"
// @Success 200 {object} response.OrderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /api/orders/{key} [put]
func (h *OrderRecordHandler) UpdateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param(ParamOrderKey), payload.ToEntity())
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// DeleteOrder godoc
// @Summary Delete an order by id
// @Tags orders
// @Param key path string true "Order id"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /api/orders/{key} [delete]
func (h *OrderRecordHandler) DeleteOrder(c *gin.Context) {
	id := c.Param(ParamOrderKey)
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err)
		return
	}
	h.logger.Info("[order][store] deleted", zap.String("order_id", id))
	c.Status(http.StatusNoContent)
}

// GetOrderByNumber godoc
// @Summary Find an order by its order number
// @Tags orders
// @Produce json
// @Param key path string true "Order number"
// @Success 200 {object} response.OrderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /api/orders/{key} [get]
func (h *OrderRecordHandler) GetOrderByNumber(c *gin.Context) {
	o, err := h.usecase.GetByOrderNumber(c.Request.Context(), c.Param(ParamOrderKey))
	if err != nil {
		h.fail(c, "get-by-number", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderRecordHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapOrderError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[order][store] "+op+" failed", zap.String("key", c.Param(ParamOrderKey)), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderNumber), errors.Is(err, usecase.ErrInvalidOrderPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNumberTaken), errors.Is(err, interfaces.ErrRecordExists):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "Order already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
