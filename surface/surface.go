// Package surface defines the capability set the filter engine consumes from
// a map widget. The engine never reaches past this interface into widget
// internals.
package surface

import "go-atollmap/types"

// MarkerHandle identifies one marker placed on a surface.
type MarkerHandle int

// Surface is the presentation contract. Implementations own marker placement
// and visibility plus viewport control; all calls are synchronous.
type Surface interface {
	CreateMarker(pos types.Coordinates, style types.MarkerStyle) MarkerHandle
	SetVisible(h MarkerHandle, visible bool)
	RemoveAll()
	FitBoundsAndClampZoom(positions []types.Coordinates, maxZoom int)
	ShowDetailPopup(content string, anchor types.Coordinates)
}
