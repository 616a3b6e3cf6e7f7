package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"buildings-api/internal/buildings"
	"buildings-api/internal/models"

	"github.com/gin-gonic/gin"
)

// MarkerHandler handles map requests
type MarkerHandler struct {
	service MarkerService
}

// MarkerService interface for dependency injection
type MarkerService interface {
	Markers(buildings.ViewState, *models.Bounds) []models.MapMarker
	MapSettings() models.MapSettings
}

// NewMarkerHandler creates a new marker handler
func NewMarkerHandler(svc MarkerService) *MarkerHandler {
	return &MarkerHandler{service: svc}
}

// Markers handles GET /markers requests
//
//	@Summary	List map markers
//	@Tags		map
//	@Produce	json
//	@Param		q			query		string	false	"case-insensitive name search"
//	@Param		selected	query		string	false	"only markers with this title"
//	@Param		bbox		query		string	false	"south,west,north,east"
//	@Success	200			{array}		models.MapMarker
//	@Failure	400			{object}	map[string]string
//	@Router		/markers [get]
func (h *MarkerHandler) Markers(c *gin.Context) {
	state := buildings.ViewState{
		Search:   c.Query("q"),
		Selected: c.Query("selected"),
	}

	var bounds *models.Bounds
	if raw := c.Query("bbox"); raw != "" {
		b, err := parseBounds(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		bounds = &b
	}

	c.JSON(http.StatusOK, h.service.Markers(state, bounds))
}

// MapSettings handles GET /map requests
//
//	@Summary	Initial map view
//	@Tags		map
//	@Produce	json
//	@Success	200	{object}	models.MapSettings
//	@Router		/map [get]
func (h *MarkerHandler) MapSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.MapSettings())
}

// parseBounds reads "south,west,north,east".
func parseBounds(raw string) (models.Bounds, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return models.Bounds{}, fmt.Errorf("invalid bbox format, expected 'south,west,north,east'")
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return models.Bounds{}, fmt.Errorf("invalid bbox coordinate %q", p)
		}
		v[i] = f
	}

	b := models.Bounds{South: v[0], West: v[1], North: v[2], East: v[3]}
	if b.South > b.North || b.West > b.East {
		return models.Bounds{}, fmt.Errorf("invalid bbox, south/west must not exceed north/east")
	}
	return b, nil
}
