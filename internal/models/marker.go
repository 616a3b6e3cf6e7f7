package models

// Coordinate is a validated latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapMarker is a renderable map point derived from a BuildingRecord.
type MapMarker struct {
	Position Coordinate `json:"position"`
	Title    string     `json:"title"`
	Geohash  string     `json:"geohash"`
}

// Bounds is a map viewport. A coordinate on the edge is inside.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// Contains reports whether c lies within b.
func (b Bounds) Contains(c Coordinate) bool {
	return c.Lat >= b.South && c.Lat <= b.North && c.Lng >= b.West && c.Lng <= b.East
}

// MapSettings are the initial map view settings handed to clients.
type MapSettings struct {
	Center Coordinate `json:"center"`
	Zoom   int        `json:"zoom"`
}
