package buildings

import (
	"fmt"
	"slices"
)

// SortDirection orders the building list by display name.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// PageSizes lists the page sizes offered by the list view.
var PageSizes = []int{6, 12, 24}

const DefaultPageSize = 6

// ViewState is everything a client chooses about how the data is shown. It is
// passed by value into the list and marker functions; nothing is cached.
type ViewState struct {
	Search    string
	Direction SortDirection
	PageSize  int
	Page      int
	Selected  string
}

// DefaultViewState is the initial A-Ö listing, first page of six.
func DefaultViewState() ViewState {
	return ViewState{
		Direction: Ascending,
		PageSize:  DefaultPageSize,
		Page:      1,
	}
}

// ParseSortDirection accepts "asc", "desc" or the empty string (ascending).
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(s) {
	case "", Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	}
	return "", fmt.Errorf("invalid sort direction %q", s)
}

// ValidPageSize reports whether size is one of PageSizes.
func ValidPageSize(size int) bool {
	return slices.Contains(PageSizes, size)
}

// ToggleDirection flips between A-Ö and Ö-A and returns to the first page.
func (v ViewState) ToggleDirection() ViewState {
	if v.Direction == Descending {
		v.Direction = Ascending
	} else {
		v.Direction = Descending
	}
	v.Page = 1
	return v
}

// Normalize replaces an unknown direction or page size with the defaults and
// lifts the page to at least 1. The upper bound is applied by Paginate.
func (v ViewState) Normalize() ViewState {
	if v.Direction != Ascending && v.Direction != Descending {
		v.Direction = Ascending
	}
	if !ValidPageSize(v.PageSize) {
		v.PageSize = DefaultPageSize
	}
	if v.Page < 1 {
		v.Page = 1
	}
	return v
}
