package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-atollmap/types"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

func rawIsland(atoll, locality string, lat, lng *float64) types.RawIsland {
	return types.RawIsland{
		Atoll:    atoll,
		Locality: locality,
		Coordinates: types.RawCoordinates{
			Latitude:  lat,
			Longitude: lng,
		},
	}
}

func TestNormalizeDropsIslandsWithoutCoordinates(t *testing.T) {
	raw := []types.RawIsland{
		rawIsland("HA", "Dhidhdhoo", ptrFloat(6.887), ptrFloat(73.114)),
		rawIsland("HA", "Filladhoo", nil, ptrFloat(73.2)),
		rawIsland("HA", "Baarah", ptrFloat(6.95), nil),
		rawIsland("HA", "Kelaa", nil, nil),
	}

	islands := Normalize(raw)

	require.Len(t, islands, 1)
	assert.Equal(t, "Dhidhdhoo", islands[0].Locality)
	assert.Equal(t, 6.887, islands[0].Coordinates.Lat)
	assert.Equal(t, 73.114, islands[0].Coordinates.Lng)
}

func TestNormalizeSkipsMalformedRecords(t *testing.T) {
	raw := []types.RawIsland{
		rawIsland("", "Nameless", ptrFloat(4.0), ptrFloat(73.0)),
		rawIsland("K", "  ", ptrFloat(4.1), ptrFloat(73.1)),
		rawIsland("K", "Maafushi", ptrFloat(3.94), ptrFloat(73.49)),
	}

	islands := Normalize(raw)

	require.Len(t, islands, 1)
	assert.Equal(t, "Maafushi", islands[0].Locality)
}

func TestNormalizeStableIDs(t *testing.T) {
	raw := []types.RawIsland{
		rawIsland("HA", "Hoarafushi", ptrFloat(6.98), ptrFloat(72.89)),
		rawIsland("HDh", "Hanimaadhoo Island", ptrFloat(6.75), ptrFloat(73.17)),
	}

	first := Normalize(raw)
	second := Normalize(raw)

	require.Len(t, first, 2)
	assert.Equal(t, "HA-hoarafushi-0", first[0].ID)
	assert.Equal(t, "HDh-hanimaadhoo-island-1", first[1].ID)
	// same input, same identifiers
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[1].ID, second[1].ID)
}

func TestNormalizeSequenceSkipsDroppedRecords(t *testing.T) {
	raw := []types.RawIsland{
		rawIsland("K", "Himmafushi", nil, nil),
		rawIsland("K", "Thulusdhoo", ptrFloat(4.37), ptrFloat(73.65)),
	}

	islands := Normalize(raw)

	require.Len(t, islands, 1)
	assert.Equal(t, "K-thulusdhoo-0", islands[0].ID)
}

func TestNormalizeProjectFieldsAndFlags(t *testing.T) {
	r := rawIsland("GA", "Villingili", ptrFloat(0.75), ptrFloat(73.43))
	r.Population = ptrInt(3248)
	r.AreaSqKm = ptrFloat(0.62)
	r.Projects = types.RawProjects{
		WaterNetwork: types.RawProject{
			Funding:        " OFID ",
			Phase:          "Phase 1",
			Status:         "In Progress",
			NetworkLengthM: "12500",
			ConnectionsNos: "540",
			TanksM3:        "750",
		},
		Harbour: types.RawProject{
			Funding: "GOV (PSIP)",
			Info:    " breakwater repair ",
		},
		ProposedForFunding:   "YES",
		OngoingHarborProject: "No",
		UrbanCenters:         "n/a",
	}

	islands := Normalize([]types.RawIsland{r})
	require.Len(t, islands, 1)
	island := islands[0]

	assert.Equal(t, 3248, *island.Population)
	assert.Equal(t, 0.62, *island.AreaSqKm)

	water := island.Projects.Water
	assert.Equal(t, "OFID", water.Funding)
	assert.Equal(t, "Phase 1", water.Phase)
	assert.Equal(t, "In Progress", water.Status)
	assert.Equal(t, "12500", water.NetworkLengthM)
	assert.Equal(t, "540", water.ConnectionsNos)
	assert.Equal(t, "750", water.TanksM3)

	harbour := island.Projects.Harbour
	assert.Equal(t, "GOV (PSIP)", harbour.Funding)
	assert.Equal(t, "breakwater repair", harbour.Info)

	// absent fields stay empty, never a sentinel
	assert.Equal(t, types.ProjectRecord{}, island.Projects.Sewerage)
	assert.Equal(t, types.ProjectRecord{}, island.Projects.Desalination)

	assert.Equal(t, types.FlagYes, island.ProposedForFunding)
	assert.Equal(t, types.FlagNo, island.OngoingHarborProject)
	assert.Equal(t, types.FlagUnset, island.UrbanCenter)
}
