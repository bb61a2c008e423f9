package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coolcare_patna/backend/internal/models"
)

// @Summary List services
// @Description Service catalog with filtering, sorting and pagination
// @Tags services
// @Produce json
// @Param category query string false "Service category"
// @Param minPrice query int false "Minimum price"
// @Param maxPrice query int false "Maximum price"
// @Param acType query string false "Compatible AC type"
// @Param emergency query bool false "Emergency services only"
// @Param q query string false "Free-text search"
// @Success 200 {object} map[string]any
// @Router /api/services [get]
func (h *Handler) ServicesList(c *gin.Context) {
	var f models.ServiceFilters
	var p models.ListParams
	if err := c.ShouldBindQuery(&f); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query parameters", err.Error())
		return
	}
	if err := c.ShouldBindQuery(&p); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query parameters", err.Error())
		return
	}

	resp, err := h.Catalog.List(c.Request.Context(), f, p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get service by id
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} map[string]any
// @Router /api/services/{id} [get]
func (h *Handler) ServiceGet(c *gin.Context) {
	resp, err := h.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
