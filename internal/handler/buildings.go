package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"buildings-api/internal/buildings"
	"buildings-api/internal/models"
	"buildings-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BuildingHandler handles building list and detail requests
type BuildingHandler struct {
	service BuildingService
}

// BuildingService interface for dependency injection
type BuildingService interface {
	List(buildings.ViewState) models.Page[models.BuildingCard]
	Building(id string) (models.BuildingRecord, error)
	BuildingByTitle(title string) (models.BuildingRecord, error)
}

// BuildingDetail is the popup content for one building.
type BuildingDetail struct {
	Card   models.BuildingCard   `json:"card"`
	Record models.BuildingRecord `json:"record"`
}

// NewBuildingHandler creates a new building handler
func NewBuildingHandler(svc BuildingService) *BuildingHandler {
	return &BuildingHandler{service: svc}
}

// List handles GET /buildings requests
//
//	@Summary	List buildings, sorted and paginated
//	@Tags		buildings
//	@Produce	json
//	@Param		q			query		string	false	"case-insensitive name search"
//	@Param		sort		query		string	false	"asc or desc"	Enums(asc, desc)
//	@Param		pageSize	query		int		false	"items per page"	Enums(6, 12, 24)
//	@Param		page		query		int		false	"1-based page, clamped to the last page"
//	@Success	200			{object}	models.Page[models.BuildingCard]
//	@Failure	400			{object}	map[string]string
//	@Router		/buildings [get]
func (h *BuildingHandler) List(c *gin.Context) {
	state, err := viewStateFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.List(state))
}

// Building handles GET /buildings/:id requests
//
//	@Summary	Building detail
//	@Tags		buildings
//	@Produce	json
//	@Param		id	path		string	true	"building id"
//	@Success	200	{object}	BuildingDetail
//	@Failure	404	{object}	map[string]string
//	@Router		/buildings/{id} [get]
func (h *BuildingHandler) Building(c *gin.Context) {
	record, err := h.service.Building(c.Param("id"))
	h.respondDetail(c, record, err)
}

// BuildingByTitle handles GET /markers/building requests
//
//	@Summary	Building behind a map marker
//	@Tags		map
//	@Produce	json
//	@Param		title	query		string	true	"marker title"
//	@Success	200		{object}	BuildingDetail
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/markers/building [get]
func (h *BuildingHandler) BuildingByTitle(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'title'"})
		return
	}

	record, err := h.service.BuildingByTitle(title)
	h.respondDetail(c, record, err)
}

func (h *BuildingHandler) respondDetail(c *gin.Context, record models.BuildingRecord, err error) {
	if errors.Is(err, service.ErrBuildingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "building not found"})
		return
	}
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("building lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, BuildingDetail{Card: buildings.Card(record), Record: record})
}

func viewStateFromQuery(c *gin.Context) (buildings.ViewState, error) {
	state := buildings.DefaultViewState()
	state.Search = c.Query("q")

	dir, err := buildings.ParseSortDirection(c.Query("sort"))
	if err != nil {
		return state, err
	}
	state.Direction = dir

	if raw := c.Query("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || !buildings.ValidPageSize(size) {
			return state, fmt.Errorf("pageSize must be one of %v", buildings.PageSizes)
		}
		state.PageSize = size
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return state, fmt.Errorf("invalid page format")
		}
		state.Page = page
	}

	return state, nil
}
