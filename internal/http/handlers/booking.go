package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coolcare_patna/backend/internal/models"
)

// @Summary Create booking
// @Description Books a service visit; the inline customer is upserted by phone
// @Tags bookings
// @Accept json
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/bookings [post]
func (h *Handler) BookingCreate(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	resp, err := h.Bookings.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) BookingGet(c *gin.Context) {
	resp, err := h.Bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) BookingsList(c *gin.Context) {
	var f models.BookingFilters
	var p models.ListParams
	if err := c.ShouldBindQuery(&f); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query parameters", err.Error())
		return
	}
	if err := c.ShouldBindQuery(&p); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query parameters", err.Error())
		return
	}

	resp, err := h.Bookings.List(c.Request.Context(), f, p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) BookingUpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	resp, err := h.Bookings.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) BookingCancel(c *gin.Context) {
	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	resp, err := h.Bookings.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) BookingReschedule(c *gin.Context) {
	var req models.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	resp, err := h.Bookings.Reschedule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Check slot availability
// @Tags bookings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param area query string true "Service area"
// @Param emergency query bool false "Emergency request"
// @Success 200 {object} map[string]any
// @Router /api/availability [get]
func (h *Handler) AvailabilityCheck(c *gin.Context) {
	var q models.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query parameters", err.Error())
		return
	}
	if err := h.Validator.Struct(q); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date and area are required", err.Error())
		return
	}

	resp, err := h.Availability.Check(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) BookingStats(c *gin.Context) {
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	resp, err := h.Bookings.Stats(c.Request.Context(), from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
