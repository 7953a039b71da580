package processor

import (
	"fmt"
	"log"
	"strings"

	"go-atollmap/types"
)

// Normalize converts raw source records into canonical islands. Records
// missing a numeric latitude or longitude are dropped here, before any other
// component sees the data; individually malformed records are skipped and
// never abort the load.
func Normalize(raw []types.RawIsland) []types.Island {
	islands := make([]types.Island, 0, len(raw))
	skipped := 0
	dropped := 0
	seq := 0

	for _, r := range raw {
		atoll := strings.TrimSpace(r.Atoll)
		locality := strings.TrimSpace(r.Locality)
		if atoll == "" || locality == "" {
			skipped++
			continue
		}
		if r.Coordinates.Latitude == nil || r.Coordinates.Longitude == nil {
			dropped++
			continue
		}

		island := types.Island{
			ID:         islandID(atoll, locality, seq),
			Atoll:      atoll,
			Locality:   locality,
			Population: r.Population,
			AreaSqKm:   r.AreaSqKm,
			Coordinates: types.Coordinates{
				Lat: *r.Coordinates.Latitude,
				Lng: *r.Coordinates.Longitude,
			},
			Projects: types.Projects{
				Water:        normalizeWater(r.Projects.WaterNetwork),
				Sewerage:     normalizeSewerage(r.Projects.SewerageNetwork),
				Harbour:      normalizeHarbour(r.Projects.Harbour),
				Desalination: normalizeDesalination(r.Projects.DesalinationPlant),
			},
			ProposedForFunding:   types.ParseFlag(r.Projects.ProposedForFunding),
			OngoingHarborProject: types.ParseFlag(r.Projects.OngoingHarborProject),
			UrbanCenter:          types.ParseFlag(r.Projects.UrbanCenters),
		}
		seq++
		islands = append(islands, island)
	}

	if skipped > 0 || dropped > 0 {
		log.Printf("Normalization: kept %d islands, skipped %d malformed records, dropped %d without coordinates",
			len(islands), skipped, dropped)
	}
	return islands
}

// islandID builds the stable synthetic identifier for an island. Identifiers
// are keyed by atoll, locality and load sequence so detail rows do not shift
// when positional indexes would.
func islandID(atoll, locality string, seq int) string {
	slug := strings.ToLower(strings.ReplaceAll(locality, " ", "-"))
	return fmt.Sprintf("%s-%s-%d", atoll, slug, seq)
}

// normalizeCommon maps the shared funding/phase/status triple. Absent source
// fields stay empty strings, never a sentinel.
func normalizeCommon(r types.RawProject) types.ProjectRecord {
	return types.ProjectRecord{
		Funding: strings.TrimSpace(r.Funding),
		Phase:   strings.TrimSpace(r.Phase),
		Status:  strings.TrimSpace(r.Status),
	}
}

func normalizeWater(r types.RawProject) types.ProjectRecord {
	p := normalizeCommon(r)
	p.NetworkLengthM = string(r.NetworkLengthM)
	p.ConnectionsNos = string(r.ConnectionsNos)
	p.TanksM3 = string(r.TanksM3)
	return p
}

func normalizeSewerage(r types.RawProject) types.ProjectRecord {
	p := normalizeCommon(r)
	p.NetworkLengthM = string(r.NetworkLengthM)
	p.Connections = string(r.Connections)
	return p
}

func normalizeHarbour(r types.RawProject) types.ProjectRecord {
	p := normalizeCommon(r)
	p.Info = strings.TrimSpace(r.Info)
	return p
}

func normalizeDesalination(r types.RawProject) types.ProjectRecord {
	return normalizeCommon(r)
}
