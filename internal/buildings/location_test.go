package buildings

import (
	"testing"

	"buildings-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected models.Coordinate
		ok       bool
	}{
		{
			name:     "well formed",
			raw:      "(60.1699, 24.9384)",
			expected: models.Coordinate{Lat: 60.1699, Lng: 24.9384},
			ok:       true,
		},
		{
			name:     "no spaces",
			raw:      "(60.17335,24.93823)",
			expected: models.Coordinate{Lat: 60.17335, Lng: 24.93823},
			ok:       true,
		},
		{
			name:     "negative values",
			raw:      "(-33.8688, -151.2093)",
			expected: models.Coordinate{Lat: -33.8688, Lng: -151.2093},
			ok:       true,
		},
		{
			name:     "trailing segments ignored",
			raw:      "(60.1, 24.9, 12.0)",
			expected: models.Coordinate{Lat: 60.1, Lng: 24.9},
			ok:       true,
		},
		{
			name:     "enclosing characters are not checked",
			raw:      "[60.1, 24.9]",
			expected: models.Coordinate{Lat: 60.1, Lng: 24.9},
			ok:       true,
		},
		{name: "empty", raw: "", ok: false},
		{name: "no comma", raw: "(60.1699 24.9384)", ok: false},
		{name: "non numeric latitude", raw: "(north, 24.9384)", ok: false},
		{name: "non numeric longitude", raw: "(60.1699, east)", ok: false},
		{name: "empty parts", raw: "(,)", ok: false},
		{name: "single comma", raw: ",", ok: false},
		{name: "nan", raw: "(NaN, 24.9)", ok: false},
		{name: "infinity", raw: "(60.1, Inf)", ok: false},
		{name: "missing parentheses eats digits", raw: "60.1,24.95", expected: models.Coordinate{Lat: 0.1, Lng: 24.9}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, ok := ParseLocation(tt.raw)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected.Lat, coord.Lat, 1e-9)
				assert.InDelta(t, tt.expected.Lng, coord.Lng, 1e-9)
			} else {
				assert.Equal(t, models.Coordinate{}, coord)
			}
		})
	}
}
