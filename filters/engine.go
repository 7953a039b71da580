// Package filters holds the session's filter state and keeps marker
// visibility, the filtered island subset and the presentation surface
// consistent with it.
package filters

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"golang.org/x/exp/slices"

	"go-atollmap/processor"
	"go-atollmap/surface"
	"go-atollmap/types"
)

// maxFocusZoom caps the zoom after fitting the viewport to an atoll so a
// small atoll is not over-magnified.
const maxFocusZoom = 10

// Engine owns the process-wide filter state. Every user action is a single
// atomic state transition: the mutex serializes recomputes, so a filter
// application completes before the next one is accepted.
type Engine struct {
	mu       sync.Mutex
	islands  []types.Island
	markers  []types.Marker
	visible  []bool
	handles  []surface.MarkerHandle
	criteria types.FilterCriteria
	surface  surface.Surface
	overlays map[string][]types.Island
}

// MarkerView pairs a derived marker with its current visibility.
type MarkerView struct {
	Marker  types.Marker `json:"marker"`
	Visible bool         `json:"visible"`
}

// NewEngine derives markers for the island set and places them on the
// surface. A nil surface is allowed; display updates become no-ops.
func NewEngine(islands []types.Island, s surface.Surface) *Engine {
	e := &Engine{surface: s}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.load(islands)
	return e
}

// load swaps in an island set and rebuilds derived state. Caller holds the
// lock.
func (e *Engine) load(islands []types.Island) {
	e.islands = islands
	e.markers = processor.DeriveMarkers(e.islands)
	e.visible = make([]bool, len(e.markers))
	for i := range e.visible {
		e.visible[i] = true
	}
	e.criteria = types.FilterCriteria{}
	e.overlays = make(map[string][]types.Island)

	if e.surface != nil {
		e.surface.RemoveAll()
		e.handles = e.handles[:0]
		for _, m := range e.markers {
			e.handles = append(e.handles, e.surface.CreateMarker(m.Position, m.Style))
		}
	}
	log.Printf("Engine loaded: %d islands, %d markers", len(e.islands), len(e.markers))
}

// Reload replaces the island set with a freshly loaded one and resets the
// filter state. Used by the periodic dataset refresh.
func (e *Engine) Reload(islands []types.Island) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.load(islands)
}

// FilterMarkers replaces the active criteria and recomputes visibility for
// every marker, pushing the result to the surface. Returns the number of
// markers left visible.
func (e *Engine) FilterMarkers(criteria types.FilterCriteria) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.criteria = criteria
	visibleCount := 0
	for i := range e.markers {
		show := markerVisible(&e.markers[i], criteria)
		e.visible[i] = show
		if show {
			visibleCount++
		}
		e.setSurfaceVisible(i, show)
	}
	log.Printf("Filter applied: %d of %d markers visible", visibleCount, len(e.markers))
	return visibleCount
}

// ResetFilters restores unrestricted criteria, shows every marker and clears
// the special-filter overlay state. Calling it twice is the same as once.
func (e *Engine) ResetFilters() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.criteria = types.FilterCriteria{}
	for i := range e.visible {
		e.visible[i] = true
		e.setSurfaceVisible(i, true)
	}
	e.overlays = make(map[string][]types.Island)
}

// Criteria returns the active filter criteria.
func (e *Engine) Criteria() types.FilterCriteria {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.criteria
}

// Islands returns the full normalized island set, unfiltered.
func (e *Engine) Islands() []types.Island {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.islands
}

// MarkerViews returns every derived marker with its current visibility.
func (e *Engine) MarkerViews() []MarkerView {
	e.mu.Lock()
	defer e.mu.Unlock()
	views := make([]MarkerView, len(e.markers))
	for i := range e.markers {
		views[i] = MarkerView{Marker: e.markers[i], Visible: e.visible[i]}
	}
	return views
}

// VisibleMarkerCount returns how many markers the active criteria leave
// visible.
func (e *Engine) VisibleMarkerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, v := range e.visible {
		if v {
			n++
		}
	}
	return n
}

// GetFilteredIslands returns the islands matching the active criteria at the
// island level: any agency producing a visible marker, ANDed with the
// agency-independent special filters.
func (e *Engine) GetFilteredIslands() []types.Island {
	e.mu.Lock()
	defer e.mu.Unlock()

	matched := make([]types.Island, 0, len(e.islands))
	for i := range e.islands {
		if islandMatches(&e.islands[i], e.criteria) {
			matched = append(matched, e.islands[i])
		}
	}
	return matched
}

// GetSpecialFilterIslands returns the islands whose named special flag is
// yes, regardless of funding data or the active criteria. The second return
// is false for unrecognized flag names.
func (e *Engine) GetSpecialFilterIslands(flagName string) ([]types.Island, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.specialFilterIslands(flagName)
}

func (e *Engine) specialFilterIslands(flagName string) ([]types.Island, bool) {
	matched := make([]types.Island, 0)
	for i := range e.islands {
		flag, ok := e.islands[i].SpecialFlag(flagName)
		if !ok {
			return nil, false
		}
		if flag == types.FlagYes {
			matched = append(matched, e.islands[i])
		}
	}
	return matched, true
}

// SpecialFilterCounts returns the per-flag island counts shown next to the
// special filter toggles.
func (e *Engine) SpecialFilterCounts() map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()

	counts := make(map[string]int, len(types.SpecialFilterNames))
	for _, name := range types.SpecialFilterNames {
		islands, _ := e.specialFilterIslands(name)
		counts[name] = len(islands)
	}
	return counts
}

// SetSpecialFilterOverlay shows or hides the highlight overlay for one
// special filter and returns the islands it covers. Overlay state is purely
// presentational and is wiped by ResetFilters.
func (e *Engine) SetSpecialFilterOverlay(flagName string, active bool) ([]types.Island, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	islands, ok := e.specialFilterIslands(flagName)
	if !ok {
		return nil, false
	}
	if active {
		e.overlays[flagName] = islands
	} else {
		delete(e.overlays, flagName)
	}
	return islands, true
}

// FocusOnAtoll fits the surface viewport to the atoll's currently visible
// markers. No-op when the atoll has no visible marker or no surface is
// mounted.
func (e *Engine) FocusOnAtoll(atollCode string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var positions []types.Coordinates
	for i := range e.markers {
		if e.markers[i].Island.Atoll == atollCode && e.visible[i] {
			positions = append(positions, e.markers[i].Position)
		}
	}
	if len(positions) == 0 || e.surface == nil {
		return
	}
	e.surface.FitBoundsAndClampZoom(positions, maxFocusZoom)
}

// ShowIslandDetail renders the detail card for an island, highlighting the
// focused agency, and routes it to the surface popup. A missing surface
// skips only the display, not the lookup.
func (e *Engine) ShowIslandDetail(islandID, focusAgency string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.islands {
		if e.islands[i].ID != islandID {
			continue
		}
		content := PopupContent(&e.islands[i], focusAgency)
		if e.surface != nil {
			e.surface.ShowDetailPopup(content, e.islands[i].Coordinates)
		}
		return content, nil
	}
	return "", fmt.Errorf("unknown island id %q", islandID)
}

func (e *Engine) setSurfaceVisible(i int, visible bool) {
	if e.surface == nil || i >= len(e.handles) {
		return
	}
	e.surface.SetVisible(e.handles[i], visible)
}

// markerVisible is the per-marker predicate: the agency-coupled checks for
// the marker's own agency, ANDed with the island-level special filters.
func markerVisible(m *types.Marker, c types.FilterCriteria) bool {
	return agencyVisible(m.Island, m.Agency, c) && flagsMatch(m.Island, c)
}

// agencyVisible evaluates the funding, phase and project-type checks for one
// agency of an island. A dimension with an empty selection is skipped.
func agencyVisible(island *types.Island, agency string, c types.FilterCriteria) bool {
	if len(c.Funding) > 0 && !slices.Contains(c.Funding, agency) {
		return false
	}

	if len(c.Phase) > 0 {
		hasPhase := false
		for _, kind := range types.AllProjectKinds {
			p := island.Projects.ByKind(kind)
			if p.Funding == agency && p.Phase != "" && slices.Contains(c.Phase, p.Phase) {
				hasPhase = true
				break
			}
		}
		if !hasPhase {
			return false
		}
	}

	if len(c.ProjectType) > 0 {
		// The selected kind's record must belong to this marker's agency and
		// carry meaningful data. The agency coupling holds even when no
		// funding filter is selected.
		hasProjectType := false
		for _, t := range c.ProjectType {
			p := island.Projects.ByKind(types.ProjectKind(t))
			if p.Funding == agency && p.HasAnyData() {
				hasProjectType = true
				break
			}
		}
		if !hasProjectType {
			return false
		}
	}

	return true
}

// flagsMatch evaluates the three special filters. They partition islands,
// not agency-specific data, so the result is identical for every marker of
// one island.
func flagsMatch(island *types.Island, c types.FilterCriteria) bool {
	if c.ProposedForFunding && island.ProposedForFunding != types.FlagYes {
		return false
	}
	if c.OngoingHarbor && island.OngoingHarborProject != types.FlagYes {
		return false
	}
	if c.UrbanCenters && island.UrbanCenter != types.FlagYes {
		return false
	}
	return true
}

// islandMatches is the island-level predicate. An island with no funded
// projects still matches when only special filters restrict the selection;
// otherwise unfunded islands would vanish from special-filter queries.
func islandMatches(island *types.Island, c types.FilterCriteria) bool {
	if !flagsMatch(island, c) {
		return false
	}
	agencies := island.FundingAgencies()
	if len(agencies) == 0 {
		return c.AgencyDimensionsEmpty()
	}
	for _, agency := range agencies {
		if agencyVisible(island, agency, c) {
			return true
		}
	}
	return false
}

// PopupContent renders the plain-text detail card for an island. Projects
// funded by the focused agency are prefixed with a highlight mark.
func PopupContent(island *types.Island, focusAgency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", island.Locality)
	fmt.Fprintf(&b, "Atoll: %s\n", island.Atoll)
	if island.Population != nil {
		fmt.Fprintf(&b, "Population: %d\n", *island.Population)
	} else {
		b.WriteString("Population: N/A\n")
	}
	if focusAgency != "" {
		fmt.Fprintf(&b, "Showing projects for: %s\n", focusAgency)
	}

	hasActive := false
	for _, kind := range types.AllProjectKinds {
		p := island.Projects.ByKind(kind)
		if !p.Active() {
			continue
		}
		hasActive = true
		mark := ""
		if p.Funding == focusAgency {
			mark = " *"
		}
		fmt.Fprintf(&b, "%s%s: Funding %s | Phase %s | Status %s\n",
			kind, mark, p.Funding, orNA(p.Phase), orNA(p.Status))
	}
	if !hasActive {
		b.WriteString("No active projects\n")
	}
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
