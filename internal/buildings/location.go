package buildings

import (
	"math"
	"strconv"
	"strings"

	"buildings-api/internal/models"
)

// ParseLocation converts a raw "(lat, lng)" string into a coordinate. The
// first and last characters are dropped without checking that they are
// parentheses. Anything after a second comma is ignored. The boolean is false
// when the string has no comma or either part is not a finite number.
func ParseLocation(raw string) (models.Coordinate, bool) {
	if len(raw) < 2 || !strings.Contains(raw, ",") {
		return models.Coordinate{}, false
	}

	parts := strings.SplitN(raw[1:len(raw)-1], ",", 3)
	if len(parts) < 2 {
		return models.Coordinate{}, false
	}

	lat, ok := parseFinite(parts[0])
	if !ok {
		return models.Coordinate{}, false
	}
	lng, ok := parseFinite(parts[1])
	if !ok {
		return models.Coordinate{}, false
	}

	return models.Coordinate{Lat: lat, Lng: lng}, true
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
