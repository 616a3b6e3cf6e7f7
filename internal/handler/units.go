package handler

import (
	"net/http"

	"buildings-api/internal/models"

	"github.com/gin-gonic/gin"
)

// UnitHandler handles service map unit requests
type UnitHandler struct {
	service UnitService
}

// UnitService interface for dependency injection
type UnitService interface {
	Units() []models.Unit
}

// UnitsResponse wraps the unit list with its size.
type UnitsResponse struct {
	Count int           `json:"count"`
	Units []models.Unit `json:"units"`
}

// NewUnitHandler creates a new unit handler
func NewUnitHandler(svc UnitService) *UnitHandler {
	return &UnitHandler{service: svc}
}

// Units handles GET /units requests
//
//	@Summary	Service map units
//	@Tags		units
//	@Produce	json
//	@Success	200	{object}	UnitsResponse
//	@Router		/units [get]
func (h *UnitHandler) Units(c *gin.Context) {
	units := h.service.Units()
	c.JSON(http.StatusOK, UnitsResponse{Count: len(units), Units: units})
}
