package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pgstay/booking/internal/application/service"
	"github.com/pgstay/booking/internal/booking"
	"github.com/pgstay/booking/internal/domain/entity"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	referenceService service.ReferenceService
	sessionService   service.SessionService
	bookingService   service.BookingService
	logger           Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	referenceService service.ReferenceService,
	sessionService service.SessionService,
	bookingService service.BookingService,
	logger Logger,
) *Handlers {
	return &Handlers{
		referenceService: referenceService,
		sessionService:   sessionService,
		bookingService:   bookingService,
		logger:           logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ValidationResponse carries per-field validation messages alongside the
// standard error string.
type ValidationResponse struct {
	Fields map[string]string `json:"fields"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ConfirmBookingRequest is the payload for persisting a reviewed record.
type ConfirmBookingRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   "1.0.0",
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    response,
	})
}

// ListEmployees handles GET /api/v1/employees
func (h *Handlers) ListEmployees(c *gin.Context) {
	options, err := h.referenceService.EmployeeOptions(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list employees", "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve employees",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    options,
	})
}

// ListProperties handles GET /api/v1/properties
func (h *Handlers) ListProperties(c *gin.Context) {
	choices, err := h.referenceService.PropertyChoices(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list properties", "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve properties",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    choices,
	})
}

// ListBeds handles GET /api/v1/properties/:sheetID/beds
func (h *Handlers) ListBeds(c *gin.Context) {
	sheetID := c.Param("sheetID")

	rows, err := h.referenceService.BedSheet(c.Request.Context(), sheetID)
	if err != nil {
		h.logger.Error("Failed to read bed sheet", "sheet_id", sheetID, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve bed sheet",
		})
		return
	}

	if rows == nil {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "bed sheet not found",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    rows,
	})
}

// CreateSession handles POST /api/v1/sessions
func (h *Handlers) CreateSession(c *gin.Context) {
	snap := h.sessionService.Create(c.Request.Context())

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    snap,
	})
}

// GetSession handles GET /api/v1/sessions/:id
func (h *Handlers) GetSession(c *gin.Context) {
	snap, err := h.sessionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "session not found",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    snap,
	})
}

// ApplyMutation handles POST /api/v1/sessions/:id/mutations
func (h *Handlers) ApplyMutation(c *gin.Context) {
	var m service.Mutation
	if err := c.ShouldBindJSON(&m); err != nil {
		h.logger.Error("Invalid mutation payload", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid mutation payload",
		})
		return
	}

	snap, err := h.sessionService.Apply(c.Request.Context(), c.Param("id"), m)
	if err != nil {
		h.writeSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    snap,
	})
}

// SubmitSession handles POST /api/v1/sessions/:id/submit
func (h *Handlers) SubmitSession(c *gin.Context) {
	snap, err := h.sessionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "session not found",
		})
		return
	}

	result, err := h.bookingService.Submit(c.Request.Context(), snap)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, Response{
				Success: false,
				Error:   "validation failed",
				Data:    ValidationResponse{Fields: verr.Fields},
			})
			return
		}

		h.logger.Error("Submit failed", "session_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "submission failed",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// ConfirmBooking handles POST /api/v1/bookings
func (h *Handlers) ConfirmBooking(c *gin.Context) {
	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid booking payload", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid booking payload",
		})
		return
	}

	record, err := h.bookingService.Confirm(c.Request.Context(), entity.BookingRecord{Fields: req.Fields})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, Response{
				Success: false,
				Error:   "validation failed",
				Data:    ValidationResponse{Fields: verr.Fields},
			})
			return
		}

		h.logger.Error("Confirm failed", "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to persist booking",
		})
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    record,
	})
}

// GetBooking handles GET /api/v1/bookings/:id
func (h *Handlers) GetBooking(c *gin.Context) {
	id := c.Param("id")

	record, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get booking", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to retrieve booking",
		})
		return
	}

	if record == nil {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    record,
	})
}

// writeSessionError maps session mutation errors to HTTP responses.
func (h *Handlers) writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "session not found",
		})
	case errors.Is(err, service.ErrUnknownMutation),
		errors.Is(err, booking.ErrUnknownSection),
		errors.Is(err, booking.ErrSectionDisabled),
		errors.Is(err, booking.ErrBedSheetPending),
		errors.Is(err, booking.ErrTabDisabled):
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
	default:
		h.logger.Error("Mutation failed", "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to apply mutation",
		})
	}
}
