package ingest

import (
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
)

// Coordinate patterns seen in the source sheet's map-link column: a direct
// "lat, lng" cell, or a Google Maps URL carrying the pair as @lat,lng,zoom,
// ll= or q= parameters. Shortened links carry no coordinates at all.
var (
	directCoordsRe = regexp.MustCompile(`^(-?\d+\.?\d*)\s*,\s*(-?\d+\.?\d*)$`)
	atCoordsRe     = regexp.MustCompile(`@(-?\d+\.?\d*),(-?\d+\.?\d*)`)
	llCoordsRe     = regexp.MustCompile(`ll=(-?\d+\.?\d*),(-?\d+\.?\d*)`)
	qCoordsRe      = regexp.MustCompile(`q=(-?\d+\.?\d*),(-?\d+\.?\d*)`)
)

// ExtractCoordinates pulls a latitude/longitude pair from a map-link cell.
func ExtractCoordinates(mapLink string) (float64, float64, bool) {
	s := strings.TrimSpace(mapLink)
	if s == "" {
		return 0, 0, false
	}
	for _, re := range []*regexp.Regexp{directCoordsRe, atCoordsRe, llCoordsRe, qCoordsRe} {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		lat, errLat := strconv.ParseFloat(m[1], 64)
		lng, errLng := strconv.ParseFloat(m[2], 64)
		if errLat != nil || errLng != nil {
			continue
		}
		return lat, lng, true
	}
	return 0, 0, false
}

// atollCenters holds approximate center coordinates for each Maldives atoll,
// the last-resort source for islands without a usable map link.
var atollCenters = map[string][2]float64{
	"HA":  {6.8, 73.1},  // Haa Alif
	"HDh": {6.6, 73.0},  // Haa Dhaalu
	"Sh":  {5.9, 73.3},  // Shaviyani
	"N":   {5.8, 73.2},  // Noonu
	"R":   {5.6, 73.0},  // Raa
	"B":   {5.3, 73.0},  // Baa
	"Lh":  {5.2, 73.2},  // Lhaviyani
	"K":   {4.8, 73.5},  // Kaafu
	"AA":  {3.9, 72.8},  // Alif Alif
	"ADh": {3.7, 72.9},  // Alif Dhaal
	"V":   {3.2, 73.5},  // Vaavu
	"M":   {3.0, 73.5},  // Meemu
	"F":   {2.9, 73.0},  // Faafu
	"Dh":  {2.2, 73.0},  // Dhaalu
	"Th":  {1.8, 73.2},  // Thaa
	"L":   {1.5, 73.2},  // Laamu
	"GA":  {0.6, 73.1},  // Gaafu Alif
	"GDh": {0.2, 73.0},  // Gaafu Dhaalu
	"Gn":  {-0.3, 73.4}, // Gnaviyani (Fuvahmulah)
	"S":   {-0.7, 73.1}, // Seenu
}

// EstimateCoordinates returns a deterministic point near the atoll center,
// seeded by the locality name so repeated ingests agree. The offset stays
// within ±0.05 degrees of the center.
func EstimateCoordinates(atoll, locality string) (float64, float64, bool) {
	center, ok := atollCenters[atoll]
	if !ok {
		return 0, 0, false
	}
	latOff := (seededUnit(locality+":lat") - 0.5) * 0.1
	lngOff := (seededUnit(locality+":lng") - 0.5) * 0.1
	return center[0] + latOff, center[1] + lngOff, true
}

// seededUnit hashes a string to a float in [0, 1).
func seededUnit(s string) float64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return float64(h.Sum64()%1_000_000) / 1_000_000
}
