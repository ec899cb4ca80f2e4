package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	request "repair_tracker/internal/adapter/http/dto/request"
	response "repair_tracker/internal/adapter/http/dto/response"
	"repair_tracker/internal/infrastructure/export"
	"repair_tracker/internal/usecase"
	"repair_tracker/internal/usecase/form"
	"repair_tracker/internal/usecase/interfaces"
	"repair_tracker/internal/usecase/session"
	"repair_tracker/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionCookieName = "rt_session"
	ParamOrderID      = "id"

	workspaceKey = "workspace"
)

// WebHandler exposes the per-session application state to the browser.
//
// Every endpoint answers with a SessionResponse so the page can re-render
// from a single consistent snapshot.

type WebHandler struct {
	sessions     *session.Manager
	logger       *zap.Logger
	secureCookie bool
}

func NewWebHandler(sessions *session.Manager, logger *zap.Logger, secureCookie bool) *WebHandler {
	return &WebHandler{sessions: sessions, logger: logger, secureCookie: secureCookie}
}

// Session resolves the session cookie, starting a new session when it is
// missing or expired.
func (h *WebHandler) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ws *session.Workspace
		if id, err := c.Cookie(SessionCookieName); err == nil {
			ws, _ = h.sessions.Get(id)
		}
		if ws == nil {
			ws = h.sessions.Create()
			h.logger.Debug("[web][session] started", zap.String("session_id", ws.ID()))
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, ws.ID(), 0, "/", "", h.secureCookie, true)
		c.Set(workspaceKey, ws)
		c.Next()
	}
}

// RequireLogin stops requests to staff endpoints from anonymous sessions.
func (h *WebHandler) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ws := workspace(c)
		if !ws.LoggedIn() {
			h.fail(c, ws, usecase.OpLogin, session.ErrLoginRequired)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetState godoc
// @Summary Current session state
// @Tags web
// @Produce json
// @Success 200 {object} response.SessionResponse
// @Router /app/state [get]
func (h *WebHandler) GetState(c *gin.Context) {
	h.ok(c, workspace(c))
}

// Navigate godoc
// @Summary Switch screens
// @Tags web
// @Accept json
// @Produce json
// @Param body body request.NavigateRequest true "Target screen"
// @Success 200 {object} response.SessionResponse
// @Failure 401 {object} response.SessionResponse
// @Router /app/navigate [post]
func (h *WebHandler) Navigate(c *gin.Context) {
	ws := workspace(c)
	var payload request.NavigateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.fail(c, ws, usecase.OpRefreshOrders, session.ErrUnknownScreen)
		return
	}

	screen := session.Screen(payload.Screen)
	var err error
	if screen == session.ScreenLogin {
		err = ws.ShowLogin(c.Request.Context())
	} else {
		err = ws.Navigate(c.Request.Context(), screen)
	}
	if err != nil {
		h.fail(c, ws, usecase.OpRefreshOrders, err)
		return
	}
	h.ok(c, ws)
}

// Login godoc
// @Summary Staff login
// @Tags web
// @Accept json
// @Produce json
// @Param body body request.LoginRequest true "Credentials"
// @Success 200 {object} response.SessionResponse
// @Failure 401 {object} response.SessionResponse
// @Router /app/login [post]
func (h *WebHandler) Login(c *gin.Context) {
	ws := workspace(c)
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.fail(c, ws, usecase.OpLogin, form.ErrIncompleteForm)
		return
	}
	if err := ws.Login(c.Request.Context(), payload.Username, payload.Password); err != nil {
		h.fail(c, ws, usecase.OpLogin, err)
		return
	}
	h.ok(c, ws)
}

// Logout godoc
// @Summary End the staff session
// @Tags web
// @Produce json
// @Success 200 {object} response.SessionResponse
// @Router /app/logout [post]
func (h *WebHandler) Logout(c *gin.Context) {
	ws := workspace(c)
	ws.Logout()
	h.ok(c, ws)
}

// LookupStatus godoc
// @Summary Public order status lookup
// @Tags web
// @Accept json
// @Produce json
// @Param body body request.StatusLookupRequest true "Order number"
// @Success 200 {object} response.SessionResponse
// @Failure 404 {object} response.SessionResponse
// @Router /app/status [post]
func (h *WebHandler) LookupStatus(c *gin.Context) {
	ws := workspace(c)
	var payload request.StatusLookupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.fail(c, ws, usecase.OpStatusLookup, usecase.ErrInvalidOrderNumber)
		return
	}
	res := ws.LookupStatus(c.Request.Context(), payload.OrderNumber)
	if res.Error != "" {
		appErr := pkg.NewDomainErrorSimple("ORDER_LOOKUP_FAILED", res.Error, http.StatusNotFound)
		if res.Error == usecase.MsgOrderLookup {
			appErr.HTTPStatus = http.StatusBadGateway
		}
		c.JSON(appErr.HTTPStatus, response.FromStateWithError(ws.State(), appErr))
		return
	}
	h.ok(c, ws)
}

// SearchOrders godoc
// @Summary Filter the order list
// @Tags web
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} response.SessionResponse
// @Router /app/orders [get]
func (h *WebHandler) SearchOrders(c *gin.Context) {
	ws := workspace(c)
	if q, ok := c.GetQuery("q"); ok {
		ws.Orders().Search(q)
	}
	h.ok(c, ws)
}

// RefreshOrders godoc
// @Summary Reload orders from the Record Store
// @Tags web
// @Produce json
// @Success 200 {object} response.SessionResponse
// @Failure 502 {object} response.SessionResponse
// @Router /app/orders/refresh [post]
func (h *WebHandler) RefreshOrders(c *gin.Context) {
	ws := workspace(c)
	if err := ws.Orders().Refresh(c.Request.Context()); err != nil {
		h.fail(c, ws, usecase.OpRefreshOrders, err)
		return
	}
	h.ok(c, ws)
}

// UpdateOrderForm godoc
// @Summary Type into the order form
// @Tags web
// @Accept json
// @Produce json
// @Param body body form.OrderFields true "Form fields"
// @Success 200 {object} response.SessionResponse
// @Failure 422 {object} response.SessionResponse
// @Router /app/orders/form [put]
func (h *WebHandler) UpdateOrderForm(c *gin.Context) {
	ws := workspace(c)
	var fields form.OrderFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.fail(c, ws, usecase.OpSubmitOrder, form.ErrRejectedInput)
		return
	}
	if err := ws.Orders().Form().Apply(fields); err != nil {
		h.fail(c, ws, usecase.OpSubmitOrder, err)
		return
	}
	h.ok(c, ws)
}

// SubmitOrderForm godoc
// @Summary Create or update the order in the form
// @Tags web
// @Produce json
// @Success 200 {object} response.SessionResponse
// @Failure 422 {object} response.SessionResponse
// @Failure 502 {object} response.SessionResponse
// @Router /app/orders/form/submit [post]
func (h *WebHandler) SubmitOrderForm(c *gin.Context) {
	ws := workspace(c)
	if _, err := ws.Orders().Submit(c.Request.Context()); err != nil {
		h.fail(c, ws, usecase.OpSubmitOrder, err)
		return
	}
	h.ok(c, ws)
}

// CancelOrderEdit godoc
// @Summary Leave edit mode
// @Tags web
// @Produce json
// @Success 200 {object} response.SessionResponse
// @Router /app/orders/form/cancel [post]
func (h *WebHandler) CancelOrderEdit(c *gin.Context) {
	ws := workspace(c)
	ws.Orders().CancelEdit()
	h.ok(c, ws)
}

// EditOrder godoc
// @Summary Load a cached order into the form
// @Tags web
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} response.SessionResponse
// @Failure 404 {object} response.SessionResponse
// @Router /app/orders/{id}/edit [post]
func (h *WebHandler) EditOrder(c *gin.Context) {
	ws := workspace(c)
	if err := ws.Orders().BeginEdit(c.Param(ParamOrderID)); err != nil {
		h.fail(c, ws, usecase.OpSubmitOrder, err)
		return
	}
	h.ok(c, ws)
}

// RemoveOrder godoc
// @Summary Delete an order after confirmation
// @Tags web
// @Produce json
// @Param id path string true "Order id"
// @Param confirm query bool false "Confirmation given by the user"
// @Success 200 {object} response.SessionResponse
// @Failure 409 {object} response.SessionResponse
// @Router /app/orders/{id} [delete]
func (h *WebHandler) RemoveOrder(c *gin.Context) {
	ws := workspace(c)
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	confirmer := interfaces.ConfirmFunc(func(context.Context, string) (bool, error) {
		return confirmed, nil
	})
	if err := ws.Orders().Remove(c.Request.Context(), c.Param(ParamOrderID), confirmer); err != nil {
		h.fail(c, ws, usecase.OpRemoveOrder, err)
		return
	}
	h.ok(c, ws)
}

// ExportOrders godoc
// @Summary Download the filtered order list
// @Tags web
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "pdf or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} pkg.HTTPError
// @Router /app/orders/export [get]
func (h *WebHandler) ExportOrders(c *gin.Context) {
	ws := workspace(c)
	exporter, err := export.NewExporter(c.Query("format"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_EXPORT_FORMAT", "Formato de exportación no soportado", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf, ws.Orders().View().Orders); err != nil {
		h.logger.Error("[web][export] failed", zap.String("session_id", ws.ID()), zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exporter.FileName()+`"`)
	c.Data(http.StatusOK, exporter.ContentType(), buf.Bytes())
}

// SearchAppointments godoc
// @Summary Filter the appointment list
// @Tags web
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} response.SessionResponse
// @Router /app/appointments [get]
func (h *WebHandler) SearchAppointments(c *gin.Context) {
	ws := workspace(c)
	if q, ok := c.GetQuery("q"); ok {
		ws.Appointments().Search(q)
	}
	h.ok(c, ws)
}

// RefreshAppointments godoc
// @Summary Reload appointments from the Record Store
// @Tags web
// @Produce json
// @Success 200 {object} response.SessionResponse
// @Failure 502 {object} response.SessionResponse
// @Router /app/appointments/refresh [post]
func (h *WebHandler) RefreshAppointments(c *gin.Context) {
	ws := workspace(c)
	if err := ws.Appointments().Refresh(c.Request.Context()); err != nil {
		h.fail(c, ws, usecase.OpRefreshAppointments, err)
		return
	}
	h.ok(c, ws)
}

// UpdateAppointmentForm godoc
// @Summary Type into the appointment form
// @Tags web
// @Accept json
// @Produce json
// @Param body body form.AppointmentFields true "Form fields"
// @Success 200 {object} response.SessionResponse
// @Failure 422 {object} response.SessionResponse
// @Router /app/appointments/form [put]
func (h *WebHandler) UpdateAppointmentForm(c *gin.Context) {
	ws := workspace(c)
	var fields form.AppointmentFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.fail(c, ws, usecase.OpBookAppointment, form.ErrRejectedInput)
		return
	}
	if err := ws.Appointments().Form().Apply(fields); err != nil {
		h.fail(c, ws, usecase.OpBookAppointment, err)
		return
	}
	h.ok(c, ws)
}

// SubmitAppointmentForm godoc
// @Summary Book the appointment in the form
// @Tags web
// @Produce json
// @Success 200 {object} response.SessionResponse
// @Failure 422 {object} response.SessionResponse
// @Failure 502 {object} response.SessionResponse
// @Router /app/appointments/form/submit [post]
func (h *WebHandler) SubmitAppointmentForm(c *gin.Context) {
	ws := workspace(c)
	if _, err := ws.Appointments().Submit(c.Request.Context()); err != nil {
		h.fail(c, ws, usecase.OpBookAppointment, err)
		return
	}
	h.ok(c, ws)
}

func workspace(c *gin.Context) *session.Workspace {
	return c.MustGet(workspaceKey).(*session.Workspace)
}

func (h *WebHandler) ok(c *gin.Context, ws *session.Workspace) {
	c.JSON(http.StatusOK, response.FromState(ws.State()))
}

func (h *WebHandler) fail(c *gin.Context, ws *session.Workspace, op usecase.Operation, err error) {
	appErr := mapWebError(op, err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Warn("[web][handler] request failed",
			zap.String("session_id", ws.ID()),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, response.FromStateWithError(ws.State(), appErr))
}

func mapWebError(op usecase.Operation, err error) *pkg.AppError {
	msg := usecase.UserMessage(op, err)
	switch {
	case errors.Is(err, session.ErrLoginRequired):
		return pkg.NewDomainErrorSimple("LOGIN_REQUIRED", "Inicie sesión para continuar", http.StatusUnauthorized)
	case errors.Is(err, session.ErrUnknownScreen):
		return pkg.NewDomainErrorSimple("UNKNOWN_SCREEN", "Pantalla desconocida", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrInvalidCredentials):
		return pkg.NewDomainError("INVALID_CREDENTIALS", msg, err, http.StatusUnauthorized)
	case errors.Is(err, form.ErrIncompleteForm), errors.Is(err, form.ErrRejectedInput):
		return pkg.NewDomainError("INCOMPLETE_FORM", msg, err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRemoveNotConfirmed):
		return pkg.NewDomainError("CONFIRMATION_REQUIRED", usecase.MsgRemoveConfirmPrompt, err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainError("ORDER_NOT_FOUND", usecase.MsgOrderNotFound, err, http.StatusNotFound)
	case errors.Is(err, interfaces.ErrNetworkFailure):
		return pkg.NewDomainError("RECORD_STORE_UNAVAILABLE", msg, err, http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrServerRejection):
		return pkg.NewDomainError("RECORD_STORE_REJECTED", msg, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", msg, err, http.StatusInternalServerError)
	}
}
