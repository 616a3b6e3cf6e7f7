package buildings

import (
	"github.com/mmcloughlin/geohash"
	"github.com/rs/zerolog/log"

	"buildings-api/internal/models"
)

// markerGeohashPrecision gives cells of roughly 150m, enough to cluster markers
// on a city map.
const markerGeohashPrecision = 7

// ExtractMarkers builds one map marker per record whose primary address has a
// parseable location. Records without one are skipped with a warning; the
// remaining markers keep the input order.
func ExtractMarkers(records []models.BuildingRecord) []models.MapMarker {
	markers := make([]models.MapMarker, 0, len(records))
	for i, record := range records {
		addr, _ := record.FirstAddress()
		position, ok := ParseLocation(addr.Location)
		if !ok {
			log.Warn().
				Int("marker", i+1).
				Str("building_id", record.ID).
				Str("location", addr.Location).
				Msg("invalid location data for marker, skipping")
			continue
		}

		markers = append(markers, models.MapMarker{
			Position: position,
			Title:    DisplayName(record),
			Geohash:  geohash.EncodeWithPrecision(position.Lat, position.Lng, markerGeohashPrecision),
		})
	}
	return markers
}

// SelectMarkers narrows markers to the selected title. An empty selection
// keeps every marker.
func SelectMarkers(markers []models.MapMarker, selected string) []models.MapMarker {
	out := make([]models.MapMarker, 0, len(markers))
	for _, m := range markers {
		if selected == "" || m.Title == selected {
			out = append(out, m)
		}
	}
	return out
}

// WithinBounds keeps the markers inside the viewport.
func WithinBounds(markers []models.MapMarker, bounds models.Bounds) []models.MapMarker {
	out := make([]models.MapMarker, 0, len(markers))
	for _, m := range markers {
		if bounds.Contains(m.Position) {
			out = append(out, m)
		}
	}
	return out
}

// FindByTitle returns the first record whose display name equals title.
func FindByTitle(records []models.BuildingRecord, title string) (models.BuildingRecord, bool) {
	for _, r := range records {
		if DisplayName(r) == title {
			return r, true
		}
	}
	return models.BuildingRecord{}, false
}
