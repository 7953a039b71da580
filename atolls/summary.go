// Package atolls builds the per-atoll detail view.
package atolls

import (
	"sort"

	"go-atollmap/types"
)

// Row is one island's line in the atoll detail table.
type Row struct {
	ID                   string     `json:"id"`
	Locality             string     `json:"locality"`
	Population           *int       `json:"population,omitempty"`
	AreaSqKm             *float64   `json:"areaSqKm,omitempty"`
	Water                string     `json:"water"`
	Sewerage             string     `json:"sewerage"`
	Harbour              string     `json:"harbour"`
	Desalination         string     `json:"desalination"`
	ProposedForFunding   types.Flag `json:"proposedForFunding"`
	OngoingHarborProject types.Flag `json:"ongoingHarborProject"`
}

// Summary is the detail view for one atoll.
type Summary struct {
	Atoll           string `json:"atoll"`
	IslandCount     int    `json:"islandCount"`
	TotalPopulation int    `json:"totalPopulation"`
	Rows            []Row  `json:"rows"`
}

// Summarize builds the detail table for one atoll. Row order follows the
// insertion order of the island sequence, never re-sorted. Atoll selection
// is navigation, so callers pass the full unfiltered island set.
func Summarize(atollCode string, islands []types.Island) Summary {
	s := Summary{Atoll: atollCode, Rows: []Row{}}
	for i := range islands {
		island := &islands[i]
		if island.Atoll != atollCode {
			continue
		}
		s.IslandCount++
		if island.Population != nil {
			s.TotalPopulation += *island.Population
		}
		s.Rows = append(s.Rows, Row{
			ID:                   island.ID,
			Locality:             island.Locality,
			Population:           island.Population,
			AreaSqKm:             island.AreaSqKm,
			Water:                island.Projects.Water.Status,
			Sewerage:             island.Projects.Sewerage.Status,
			Harbour:              island.Projects.Harbour.Status,
			Desalination:         island.Projects.Desalination.Status,
			ProposedForFunding:   island.ProposedForFunding,
			OngoingHarborProject: island.OngoingHarborProject,
		})
	}
	return s
}

// Codes returns the sorted distinct atoll codes of an island set, the order
// the atoll navigation buttons use.
func Codes(islands []types.Island) []string {
	seen := make(map[string]bool)
	var codes []string
	for i := range islands {
		if !seen[islands[i].Atoll] {
			seen[islands[i].Atoll] = true
			codes = append(codes, islands[i].Atoll)
		}
	}
	sort.Strings(codes)
	return codes
}
