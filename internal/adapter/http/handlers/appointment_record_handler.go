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

var (
	errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
)

// AppointmentRecordHandler serves the appointment endpoints of the stand-in
// Record Store.

type AppointmentRecordHandler struct {
	usecase usecase.IAppointmentRecordUseCase
	logger  *zap.Logger
}

func NewAppointmentRecordHandler(uc usecase.IAppointmentRecordUseCase, logger *zap.Logger) *AppointmentRecordHandler {
	return &AppointmentRecordHandler{usecase: uc, logger: logger}
}

// ListAppointments godoc
// @Summary List appointments
// @Tags appointments
// @Produce json
// @Success 200 {array} response.AppointmentResponse
// @Router /api/appointments [get]
func (h *AppointmentRecordHandler) ListAppointments(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.logger.Error("[appointment][store] list failed", zap.Error(err))
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAppointments(list))
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body request.AppointmentRequest true "Appointment"
// @Success 201 {object} response.AppointmentResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /api/appointments [post]
func (h *AppointmentRecordHandler) CreateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapAppointmentError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("[appointment][store] create failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("[appointment][store] created", zap.String("appointment_id", created.ID))
	c.JSON(http.StatusCreated, response.FromAppointment(created))
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrRecordExists):
		return pkg.NewDomainErrorSimple("APPOINTMENT_ALREADY_EXISTS", "Appointment already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
