package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		mapLink string
		lat     float64
		lng     float64
		ok      bool
	}{
		{"direct pair", "6.887, 73.114", 6.887, 73.114, true},
		{"direct pair no space", "3.9423,73.4907", 3.9423, 73.4907, true},
		{"at url", "https://www.google.com/maps/@4.1748,73.5089,15z", 4.1748, 73.5089, true},
		{"ll param", "https://maps.google.com/?ll=5.1613,73.0087&z=14", 5.1613, 73.0087, true},
		{"q param", "https://maps.google.com/?q=-0.2986,73.4251", -0.2986, 73.4251, true},
		{"shortened link", "https://goo.gl/maps/Xb1yz", 0, 0, false},
		{"empty cell", "", 0, 0, false},
		{"plain text", "see attached map", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng, ok := ExtractCoordinates(tt.mapLink)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.lat, lat)
				assert.Equal(t, tt.lng, lng)
			}
		})
	}
}

func TestEstimateCoordinatesDeterministic(t *testing.T) {
	lat1, lng1, ok := EstimateCoordinates("K", "Gulhi")
	require.True(t, ok)
	lat2, lng2, ok := EstimateCoordinates("K", "Gulhi")
	require.True(t, ok)

	assert.Equal(t, lat1, lat2)
	assert.Equal(t, lng1, lng2)

	// within the atoll-center window
	assert.InDelta(t, 4.8, lat1, 0.05)
	assert.InDelta(t, 73.5, lng1, 0.05)
}

func TestEstimateCoordinatesVariesByLocality(t *testing.T) {
	latA, lngA, ok := EstimateCoordinates("K", "Gulhi")
	require.True(t, ok)
	latB, lngB, ok := EstimateCoordinates("K", "Maafushi")
	require.True(t, ok)

	assert.True(t, latA != latB || lngA != lngB)
}

func TestEstimateCoordinatesUnknownAtoll(t *testing.T) {
	_, _, ok := EstimateCoordinates("XX", "Somewhere")
	assert.False(t, ok)
}
