// Package statistics computes the aggregate counts shown in the dashboard's
// stats panel.
package statistics

import (
	"golang.org/x/exp/slices"

	"go-atollmap/types"
)

// Stats is the aggregate view over an island subset.
type Stats struct {
	TotalIslands int                       `json:"totalIslands"`
	Projects     map[types.ProjectKind]int `json:"projects,omitempty"`
	NoMatches    bool                      `json:"noMatches,omitempty"`
}

// Summarize counts the supplied islands plus, for each project kind in the
// active project-type selection (all four kinds when empty), the islands
// carrying an active record of that kind funded by an agency in the active
// funding selection (any agency when empty).
//
// The caller supplies the subset; no island-level filtering happens here, so
// the same call works on the full set and on a pre-filtered one.
func Summarize(islands []types.Island, criteria types.FilterCriteria) Stats {
	if len(islands) == 0 {
		return Stats{NoMatches: true}
	}

	kinds := types.AllProjectKinds
	if len(criteria.ProjectType) > 0 {
		kinds = make([]types.ProjectKind, 0, len(criteria.ProjectType))
		for _, t := range criteria.ProjectType {
			kinds = append(kinds, types.ProjectKind(t))
		}
	}

	stats := Stats{
		TotalIslands: len(islands),
		Projects:     make(map[types.ProjectKind]int, len(kinds)),
	}
	for _, kind := range kinds {
		count := 0
		for i := range islands {
			p := islands[i].Projects.ByKind(kind)
			if !p.Active() {
				continue
			}
			if len(criteria.Funding) > 0 && !slices.Contains(criteria.Funding, p.Funding) {
				continue
			}
			count++
		}
		stats.Projects[kind] = count
	}
	return stats
}
