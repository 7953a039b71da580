package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-atollmap/types"
)

type stubGeocoder struct {
	lat, lng float64
	err      error
	queries  []string
}

func (g *stubGeocoder) Geocode(query string) (float64, float64, error) {
	g.queries = append(g.queries, query)
	return g.lat, g.lng, g.err
}

func TestConvert(t *testing.T) {
	cv := &Converter{}
	ds, err := cv.Convert(filepath.Join("testdata", "projects.csv"))
	require.NoError(t, err)

	// the orphan row without an atoll is skipped
	require.Len(t, ds.Islands, 3)
	assert.Equal(t, 3, ds.Metadata.TotalIslands)
	assert.Equal(t, []string{"GOV (PSIP)", "OFID"}, ds.Metadata.FundingAgencies)
	assert.Equal(t, []string{"HA", "K"}, ds.Metadata.Atolls)
	assert.Equal(t, 2, ds.Metadata.CoordinatesInfo.ExtractedFromMaps)
	assert.Equal(t, 1, ds.Metadata.CoordinatesInfo.EstimatedFromAtoll)
	assert.Zero(t, ds.Metadata.CoordinatesInfo.Missing)

	dhidhdhoo := ds.Islands[0]
	assert.Equal(t, "HA", dhidhdhoo.Atoll)
	require.NotNil(t, dhidhdhoo.Population)
	assert.Equal(t, 3412, *dhidhdhoo.Population)
	require.NotNil(t, dhidhdhoo.AreaSqKm)
	assert.Equal(t, 0.92, *dhidhdhoo.AreaSqKm)
	require.NotNil(t, dhidhdhoo.Coordinates.Latitude)
	assert.Equal(t, 6.887, *dhidhdhoo.Coordinates.Latitude)
	assert.Equal(t, 73.114, *dhidhdhoo.Coordinates.Longitude)
	assert.Equal(t, "extracted", dhidhdhoo.Coordinates.Source)

	water := dhidhdhoo.Projects.WaterNetwork
	assert.Equal(t, "OFID", water.Funding)
	assert.Equal(t, "Phase 1", water.Phase)
	assert.Equal(t, types.FlexString("12500"), water.NetworkLengthM)

	// the misnamed harbour phase column still lands in the record
	harbour := dhidhdhoo.Projects.Harbour
	assert.Equal(t, "GOV (PSIP)", harbour.Funding)
	assert.Equal(t, "Phase 2", harbour.Phase)
	assert.Equal(t, "Breakwater extension", harbour.Info)

	assert.Equal(t, "Yes", dhidhdhoo.Projects.ProposedForFunding)
	assert.Equal(t, "no", dhidhdhoo.Projects.OngoingHarborProject)

	// the @lat,lng URL counts as extracted, not estimated
	maafushi := ds.Islands[1]
	assert.Equal(t, "extracted", maafushi.Coordinates.Source)
	assert.Equal(t, 3.9423, *maafushi.Coordinates.Latitude)
	assert.Equal(t, "YES", maafushi.Projects.UrbanCenters)
	assert.Equal(t, types.FlexString("410"), maafushi.Projects.SewerageNetwork.Connections)

	// shortened link carries no pair, the atoll-center estimate fills in
	gulhi := ds.Islands[2]
	assert.Equal(t, "estimated", gulhi.Coordinates.Source)
	require.NotNil(t, gulhi.Coordinates.Latitude)
	assert.InDelta(t, 4.8, *gulhi.Coordinates.Latitude, 0.05)
	assert.InDelta(t, 73.5, *gulhi.Coordinates.Longitude, 0.05)
}

func TestConvertUsesGeocoderBeforeEstimate(t *testing.T) {
	geo := &stubGeocoder{lat: 4.2278, lng: 73.5097}
	cv := &Converter{Geocoder: geo}

	ds, err := cv.Convert(filepath.Join("testdata", "projects.csv"))
	require.NoError(t, err)

	gulhi := ds.Islands[2]
	assert.Equal(t, 4.2278, *gulhi.Coordinates.Latitude)
	assert.Equal(t, 73.5097, *gulhi.Coordinates.Longitude)
	require.Len(t, geo.queries, 1)
	assert.Equal(t, "Gulhi, K Atoll, Maldives", geo.queries[0])
}

func TestConvertGeocoderFailureFallsBackToEstimate(t *testing.T) {
	geo := &stubGeocoder{err: errors.New("quota exceeded")}
	cv := &Converter{Geocoder: geo}

	ds, err := cv.Convert(filepath.Join("testdata", "projects.csv"))
	require.NoError(t, err)

	gulhi := ds.Islands[2]
	require.NotNil(t, gulhi.Coordinates.Latitude)
	assert.InDelta(t, 4.8, *gulhi.Coordinates.Latitude, 0.05)
}

func TestConvertMissingFile(t *testing.T) {
	cv := &Converter{}
	_, err := cv.Convert(filepath.Join("testdata", "no-such.csv"))
	assert.Error(t, err)
}

func TestConvertNoHeaderRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headerless.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0o644))

	cv := &Converter{}
	_, err := cv.Convert(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}
