package types

// MarkerStyle is the presentation metadata of a marker. The agency-to-style
// mapping is deterministic and total; unrecognized agencies get a default.
type MarkerStyle struct {
	Scale int    `json:"scale"`
	Color string `json:"color"`
}

// Marker is the derived per-(island, agency) visual unit and the unit of map
// visibility filtering. Markers are rebuilt from scratch on every data load
// and never persisted.
type Marker struct {
	IslandID string      `json:"islandId"`
	Island   *Island     `json:"-"`
	Agency   string      `json:"agency"`
	Position Coordinates `json:"position"`
	Offset   float64     `json:"offset"`
	Style    MarkerStyle `json:"style"`
}
