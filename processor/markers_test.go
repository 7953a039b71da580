package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-atollmap/types"
)

func islandWithFunding(id string, water, sewerage, harbour, desalination string) types.Island {
	return types.Island{
		ID:          id,
		Atoll:       "K",
		Locality:    id,
		Coordinates: types.Coordinates{Lat: 4.2, Lng: 73.5},
		Projects: types.Projects{
			Water:        types.ProjectRecord{Funding: water},
			Sewerage:     types.ProjectRecord{Funding: sewerage},
			Harbour:      types.ProjectRecord{Funding: harbour},
			Desalination: types.ProjectRecord{Funding: desalination},
		},
	}
}

func TestDeriveMarkersOnePerDistinctAgency(t *testing.T) {
	islands := []types.Island{
		islandWithFunding("three", "OFID", "IDB", "OFID", "GOV (PSIP)"),
		islandWithFunding("one", "EXIM (India)", "", "", ""),
		islandWithFunding("none", "", "", "", ""),
	}

	markers := DeriveMarkers(islands)

	require.Len(t, markers, 4)
	agencies := []string{}
	for _, m := range markers {
		if m.IslandID == "three" {
			agencies = append(agencies, m.Agency)
		}
	}
	// distinct agencies in first-seen kind order
	assert.Equal(t, []string{"OFID", "IDB", "GOV (PSIP)"}, agencies)
}

func TestDeriveMarkersSingleAgencyNoOffset(t *testing.T) {
	islands := []types.Island{islandWithFunding("one", "OFID", "", "", "")}

	markers := DeriveMarkers(islands)

	require.Len(t, markers, 1)
	assert.Zero(t, markers[0].Offset)
	assert.Equal(t, islands[0].Coordinates, markers[0].Position)
}

func TestDeriveMarkersOffsetsSymmetric(t *testing.T) {
	islands := []types.Island{
		islandWithFunding("two", "OFID", "IDB", "", ""),
		islandWithFunding("three", "OFID", "IDB", "GOV (PSIP)", ""),
	}

	markers := DeriveMarkers(islands)
	require.Len(t, markers, 5)

	byIsland := map[string][]types.Marker{}
	for _, m := range markers {
		byIsland[m.IslandID] = append(byIsland[m.IslandID], m)
	}

	for id, ms := range byIsland {
		sum := 0.0
		for _, m := range ms {
			sum += m.Offset
			assert.InDelta(t, islands[0].Coordinates.Lat+m.Offset, m.Position.Lat, 1e-12)
			assert.InDelta(t, islands[0].Coordinates.Lng+m.Offset, m.Position.Lng, 1e-12)
		}
		assert.InDelta(t, 0, sum, 1e-12, "offsets for %s should center on the island", id)
	}

	// three agencies: middle marker sits exactly on the island
	three := byIsland["three"]
	require.Len(t, three, 3)
	assert.Equal(t, -0.002, three[0].Offset)
	assert.Zero(t, three[1].Offset)
	assert.Equal(t, 0.002, three[2].Offset)
}

func TestStyleForAgencyKnownAndDefault(t *testing.T) {
	assert.Equal(t, types.MarkerStyle{Scale: 11, Color: "#007bff"}, StyleForAgency("OFID"))
	assert.Equal(t, types.MarkerStyle{Scale: 15, Color: "#28a745"}, StyleForAgency("GOV (PSIP)"))
	assert.Equal(t, types.MarkerStyle{Scale: 7, Color: "#dc3545"}, StyleForAgency("EXIM (India)"))
	assert.Equal(t, types.MarkerStyle{Scale: 11, Color: "#ffc107"}, StyleForAgency("IDB"))

	def := StyleForAgency("World Bank")
	assert.Equal(t, types.MarkerStyle{Scale: 8, Color: "#6c757d"}, def)
	assert.Equal(t, def, StyleForAgency(""))
}
