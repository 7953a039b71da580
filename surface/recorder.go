package surface

import (
	"sync"

	"github.com/twpayne/go-geom"

	"go-atollmap/types"
)

// Viewport is the last viewport fit requested on a Recorder.
type Viewport struct {
	Bounds  *geom.Bounds
	MaxZoom int
}

// Popup is the last detail popup shown on a Recorder.
type Popup struct {
	Content string
	Anchor  types.Coordinates
}

// Recorder is an in-memory Surface. It stands in for the real map widget on
// the server side and backs the test harness: every call is recorded so
// callers can assert on marker visibility and viewport state.
type Recorder struct {
	mu        sync.Mutex
	positions []types.Coordinates
	styles    []types.MarkerStyle
	visible   []bool
	viewport  *Viewport
	popup     *Popup
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) CreateMarker(pos types.Coordinates, style types.MarkerStyle) MarkerHandle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions = append(r.positions, pos)
	r.styles = append(r.styles, style)
	r.visible = append(r.visible, true)
	return MarkerHandle(len(r.positions) - 1)
}

func (r *Recorder) SetVisible(h MarkerHandle, visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if int(h) < 0 || int(h) >= len(r.visible) {
		return
	}
	r.visible[h] = visible
}

func (r *Recorder) RemoveAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions = nil
	r.styles = nil
	r.visible = nil
}

func (r *Recorder) FitBoundsAndClampZoom(positions []types.Coordinates, maxZoom int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.viewport = &Viewport{Bounds: BoundsOf(positions), MaxZoom: maxZoom}
}

func (r *Recorder) ShowDetailPopup(content string, anchor types.Coordinates) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.popup = &Popup{Content: content, Anchor: anchor}
}

// MarkerCount returns how many markers are currently placed.
func (r *Recorder) MarkerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.positions)
}

// VisibleCount returns how many placed markers are visible.
func (r *Recorder) VisibleCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.visible {
		if v {
			n++
		}
	}
	return n
}

// Visible reports the visibility of one marker handle.
func (r *Recorder) Visible(h MarkerHandle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if int(h) < 0 || int(h) >= len(r.visible) {
		return false
	}
	return r.visible[h]
}

// Viewport returns the last viewport fit, nil if none happened.
func (r *Recorder) Viewport() *Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewport
}

// LastPopup returns the last popup shown, nil if none happened.
func (r *Recorder) LastPopup() *Popup {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.popup
}
