package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-atollmap/types"
)

func testIslands() []types.Island {
	return []types.Island{
		{
			ID: "a-0",
			Projects: types.Projects{
				Water:   types.ProjectRecord{Funding: "OFID"},
				Harbour: types.ProjectRecord{Funding: "IDB"},
			},
		},
		{
			ID: "b-1",
			Projects: types.Projects{
				Water:    types.ProjectRecord{Funding: "GOV (PSIP)"},
				Sewerage: types.ProjectRecord{Funding: "OFID"},
			},
		},
		{
			ID: "c-2",
			// phase without funding is an inactive record
			Projects: types.Projects{
				Desalination: types.ProjectRecord{Phase: "Phase 1"},
			},
		},
	}
}

func TestSummarizeUnrestricted(t *testing.T) {
	stats := Summarize(testIslands(), types.FilterCriteria{})

	assert.Equal(t, 3, stats.TotalIslands)
	assert.False(t, stats.NoMatches)
	assert.Equal(t, map[types.ProjectKind]int{
		types.Water:        2,
		types.Sewerage:     1,
		types.Harbour:      1,
		types.Desalination: 0,
	}, stats.Projects)
}

func TestSummarizeRespectsFundingSelection(t *testing.T) {
	stats := Summarize(testIslands(), types.FilterCriteria{Funding: []string{"OFID"}})

	assert.Equal(t, 3, stats.TotalIslands)
	assert.Equal(t, 1, stats.Projects[types.Water])
	assert.Equal(t, 1, stats.Projects[types.Sewerage])
	assert.Zero(t, stats.Projects[types.Harbour])
}

func TestSummarizeRespectsProjectTypeSelection(t *testing.T) {
	stats := Summarize(testIslands(), types.FilterCriteria{ProjectType: []string{"water"}})

	assert.Len(t, stats.Projects, 1)
	assert.Equal(t, 2, stats.Projects[types.Water])
}

func TestSummarizeEmptyInput(t *testing.T) {
	stats := Summarize(nil, types.FilterCriteria{})

	assert.True(t, stats.NoMatches)
	assert.Zero(t, stats.TotalIslands)
	assert.Nil(t, stats.Projects)
}
