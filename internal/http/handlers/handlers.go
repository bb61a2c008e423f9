package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/coolcare_patna/backend/internal/db"
	"github.com/coolcare_patna/backend/internal/service"
)

type Handler struct {
	Store        *db.Store
	Catalog      *service.CatalogService
	Customers    *service.CustomerService
	Technicians  *service.TechnicianService
	Testimonials *service.TestimonialService
	Bookings     *service.BookingService
	Availability *service.AvailabilityService
	Validator    *validator.Validate
	Logger       zerolog.Logger
	AdminKey     string
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// writeServiceError maps the service error taxonomy onto HTTP codes.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, service.ErrConflict):
		writeError(c, http.StatusConflict, "CONFLICT", err.Error(), nil)
	case errors.Is(err, service.ErrNotFound):
		writeError(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(c, http.StatusGatewayTimeout, "TIMEOUT", "Request timed out", nil)
	default:
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error", err.Error())
	}
}

func parseDateQuery(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", key+" must be YYYY-MM-DD", nil)
		return nil, false
	}
	return &t, true
}
