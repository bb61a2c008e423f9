package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coolcare_patna/backend/internal/models"
)

func (h *Handler) TechniciansList(c *gin.Context) {
	var f models.TechnicianFilters
	var p models.ListParams
	if err := c.ShouldBindQuery(&f); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query parameters", err.Error())
		return
	}
	if err := c.ShouldBindQuery(&p); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid query parameters", err.Error())
		return
	}

	resp, err := h.Technicians.List(c.Request.Context(), f, p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) TechnicianGet(c *gin.Context) {
	resp, err := h.Technicians.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) TechnicianSetAvailability(c *gin.Context) {
	var req models.TechnicianAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}

	resp, err := h.Technicians.SetAvailability(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) TeamList(c *gin.Context) {
	resp, err := h.Technicians.Team(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
