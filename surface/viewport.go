package surface

import (
	"github.com/twpayne/go-geom"

	"go-atollmap/types"
)

// BoundsOf computes the geographic bounding box of a set of marker positions,
// x as longitude and y as latitude. Nil for an empty set.
func BoundsOf(positions []types.Coordinates) *geom.Bounds {
	if len(positions) == 0 {
		return nil
	}
	flat := make([]float64, 0, len(positions)*2)
	for _, p := range positions {
		flat = append(flat, p.Lng, p.Lat)
	}
	return geom.NewMultiPointFlat(geom.XY, flat).Bounds()
}
