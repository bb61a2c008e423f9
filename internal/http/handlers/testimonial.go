package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coolcare_patna/backend/internal/models"
)

func (h *Handler) TestimonialsList(c *gin.Context) {
	var f models.TestimonialFilters
	var p models.ListParams
	if err := c.ShouldBindQuery(&f); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query parameters", err.Error())
		return
	}
	if err := c.ShouldBindQuery(&p); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query parameters", err.Error())
		return
	}

	resp, err := h.Testimonials.List(c.Request.Context(), f, p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Submit testimonial
// @Description New testimonials are created unverified regardless of input
// @Tags testimonials
// @Accept json
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/testimonials [post]
func (h *Handler) TestimonialCreate(c *gin.Context) {
	var req models.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	resp, err := h.Testimonials.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) TestimonialVerify(c *gin.Context) {
	resp, err := h.Testimonials.Verify(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) TestimonialDelete(c *gin.Context) {
	resp, err := h.Testimonials.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
