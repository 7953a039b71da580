package processor

import (
	"go-atollmap/types"
)

// markerOffsetDelta is the per-index coordinate nudge, in degrees, applied to
// co-located markers of one island. Small enough not to misplace the island
// at realistic zoom levels, large enough that markers stay distinguishable.
const markerOffsetDelta = 0.002

// DeriveMarkers expands each island into one marker per distinct funding
// agency. An island with k agencies yields exactly k markers whose offsets
// are symmetric around the island's true coordinate; an island with no
// funded projects yields none.
func DeriveMarkers(islands []types.Island) []types.Marker {
	var markers []types.Marker
	for i := range islands {
		island := &islands[i]
		agencies := island.FundingAgencies()
		for idx, agency := range agencies {
			offset := 0.0
			if len(agencies) > 1 {
				offset = (float64(idx) - float64(len(agencies)-1)/2) * markerOffsetDelta
			}
			markers = append(markers, types.Marker{
				IslandID: island.ID,
				Island:   island,
				Agency:   agency,
				Offset:   offset,
				Position: types.Coordinates{
					Lat: island.Coordinates.Lat + offset,
					Lng: island.Coordinates.Lng + offset,
				},
				Style: StyleForAgency(agency),
			})
		}
	}
	return markers
}

// StyleForAgency maps a funding agency to its marker scale and color. The
// mapping is total: any string gets a style, unrecognized agencies the
// default one.
func StyleForAgency(agency string) types.MarkerStyle {
	switch agency {
	case "OFID":
		return types.MarkerStyle{Scale: 11, Color: "#007bff"}
	case "GOV (PSIP)":
		return types.MarkerStyle{Scale: 15, Color: "#28a745"}
	case "EXIM (India)":
		return types.MarkerStyle{Scale: 7, Color: "#dc3545"}
	case "IDB":
		return types.MarkerStyle{Scale: 11, Color: "#ffc107"}
	default:
		return types.MarkerStyle{Scale: 8, Color: "#6c757d"}
	}
}
