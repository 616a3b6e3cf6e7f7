package buildings

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"buildings-api/internal/models"
)

// SortBuildings returns a copy of records ordered by display name using
// Finnish collation, so that Å, Ä and Ö sort after Z. Equal names keep their
// input order.
func SortBuildings(records []models.BuildingRecord, dir SortDirection) []models.BuildingRecord {
	type keyed struct {
		name   string
		record models.BuildingRecord
	}
	items := make([]keyed, len(records))
	for i, r := range records {
		items[i] = keyed{name: DisplayName(r), record: r}
	}

	// Collators keep internal buffers and must not be shared between goroutines.
	c := collate.New(language.Finnish)
	slices.SortStableFunc(items, func(a, b keyed) int {
		if dir == Descending {
			return c.CompareString(b.name, a.name)
		}
		return c.CompareString(a.name, b.name)
	})

	sorted := make([]models.BuildingRecord, len(items))
	for i, it := range items {
		sorted[i] = it.record
	}
	return sorted
}

// Paginate returns page number page of items, size items per page. The page
// is clamped into [1, total pages]; an empty list has a single empty page.
func Paginate[T any](items []T, size, page int) models.Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + size - 1) / size
	lastPage := max(totalPages, 1)
	page = min(max(page, 1), lastPage)

	start := min((page-1)*size, total)
	end := min(start+size, total)

	visible := make([]T, end-start)
	copy(visible, items[start:end])

	pages := make([]int, totalPages)
	for i := range pages {
		pages[i] = i + 1
	}

	return models.Page[T]{
		Items:      visible,
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
		Pages:      pages,
	}
}

// List filters, sorts and paginates records for the given view state. The
// input slice is left untouched.
func List(records []models.BuildingRecord, state ViewState) models.Page[models.BuildingRecord] {
	state = state.Normalize()
	filtered := FilterBuildings(records, state.Search)
	sorted := SortBuildings(filtered, state.Direction)
	return Paginate(sorted, state.PageSize, state.Page)
}

// Markers derives the map markers for the given view state: extract, search,
// then narrow to the selected marker.
func Markers(records []models.BuildingRecord, state ViewState) []models.MapMarker {
	markers := FilterMarkers(ExtractMarkers(records), state.Search)
	return SelectMarkers(markers, state.Selected)
}
