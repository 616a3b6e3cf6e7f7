package service

import (
	"context"
	"errors"
	"sync"

	"buildings-api/internal/buildings"
	"buildings-api/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrBuildingNotFound is returned when no record matches a lookup.
var ErrBuildingNotFound = errors.New("service: building not found")

// DefaultMapSettings centre the map on Helsinki.
var DefaultMapSettings = models.MapSettings{
	Center: models.Coordinate{Lat: 60.1699, Lng: 24.9384},
	Zoom:   13,
}

// BuildingRepository interface for dependency injection
type BuildingRepository interface {
	FetchBuildings(ctx context.Context) ([]models.BuildingRecord, error)
}

// UnitRepository interface for dependency injection
type UnitRepository interface {
	FetchUnits(ctx context.Context) ([]models.Unit, error)
}

// BuildingService keeps the latest snapshot of both upstream sources and
// derives list pages and map markers from it. Snapshots are replaced, never
// modified, so readers may hold on to the slices they get.
type BuildingService struct {
	buildingRepo BuildingRepository
	unitRepo     UnitRepository

	mu      sync.RWMutex
	records []models.BuildingRecord
	markers []models.MapMarker
	unitSet []models.Unit
}

// NewBuildingService creates a service with empty snapshots
func NewBuildingService(buildingRepo BuildingRepository, unitRepo UnitRepository) *BuildingService {
	return &BuildingService{
		buildingRepo: buildingRepo,
		unitRepo:     unitRepo,
		records:      []models.BuildingRecord{},
		markers:      []models.MapMarker{},
		unitSet:      []models.Unit{},
	}
}

// Refresh fetches both sources concurrently. A source that fails is logged and
// keeps its previous snapshot; there is no retry.
func (s *BuildingService) Refresh(ctx context.Context) {
	var g errgroup.Group

	g.Go(func() error {
		records, err := s.buildingRepo.FetchBuildings(ctx)
		if err != nil {
			log.Error().Err(err).Msg("error fetching buildings")
			return nil
		}
		markers := buildings.ExtractMarkers(records)

		s.mu.Lock()
		s.records, s.markers = records, markers
		s.mu.Unlock()

		log.Info().Int("buildings", len(records)).Int("markers", len(markers)).Msg("building snapshot updated")
		return nil
	})

	g.Go(func() error {
		units, err := s.unitRepo.FetchUnits(ctx)
		if err != nil {
			log.Error().Err(err).Msg("error fetching service map units")
			return nil
		}

		s.mu.Lock()
		s.unitSet = units
		s.mu.Unlock()

		log.Info().Int("units", len(units)).Msg("unit snapshot updated")
		return nil
	})

	g.Wait()
}

func (s *BuildingService) snapshot() ([]models.BuildingRecord, []models.MapMarker) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.markers
}

// Markers returns the markers matching the search and selection in state,
// optionally limited to a viewport.
func (s *BuildingService) Markers(state buildings.ViewState, bounds *models.Bounds) []models.MapMarker {
	_, markers := s.snapshot()

	out := buildings.SelectMarkers(buildings.FilterMarkers(markers, state.Search), state.Selected)
	if bounds != nil {
		out = buildings.WithinBounds(out, *bounds)
	}
	return out
}

// List returns one page of building cards for state.
func (s *BuildingService) List(state buildings.ViewState) models.Page[models.BuildingCard] {
	records, _ := s.snapshot()

	page := buildings.List(records, state)
	return models.Page[models.BuildingCard]{
		Items:      buildings.Cards(page.Items),
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		Pages:      page.Pages,
	}
}

// Building finds a record by its id.
func (s *BuildingService) Building(id string) (models.BuildingRecord, error) {
	records, _ := s.snapshot()
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.BuildingRecord{}, ErrBuildingNotFound
}

// BuildingByTitle finds the record behind a map marker title.
func (s *BuildingService) BuildingByTitle(title string) (models.BuildingRecord, error) {
	records, _ := s.snapshot()
	if r, ok := buildings.FindByTitle(records, title); ok {
		return r, nil
	}
	return models.BuildingRecord{}, ErrBuildingNotFound
}

// Units returns the latest service map units.
func (s *BuildingService) Units() []models.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unitSet
}

// MapSettings returns the initial map view.
func (s *BuildingService) MapSettings() models.MapSettings {
	return DefaultMapSettings
}
