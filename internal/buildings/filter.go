package buildings

import (
	"strings"

	"buildings-api/internal/models"
)

// FilterMarkers keeps the markers whose title contains search, ignoring case.
func FilterMarkers(markers []models.MapMarker, search string) []models.MapMarker {
	return filterByName(markers, search, func(m models.MapMarker) string { return m.Title })
}

// FilterBuildings keeps the records whose display name contains search, ignoring case.
func FilterBuildings(records []models.BuildingRecord, search string) []models.BuildingRecord {
	return filterByName(records, search, DisplayName)
}

// filterByName always returns a fresh slice so callers may reorder it freely.
func filterByName[T any](items []T, search string, name func(T) string) []T {
	needle := strings.ToLower(search)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle == "" || strings.Contains(strings.ToLower(name(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}
