// Package ingest converts the raw OFID project workbook export into the
// dataset document the load boundary consumes.
package ingest

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"go-atollmap/types"
)

// headerMarker identifies the real header row inside the multi-header
// workbook export.
const headerMarker = "Atoll,Locality,Population"

// Geocoder resolves a locality to coordinates when the source row carries
// none. Optional; without one the atoll-center estimate is the fallback.
type Geocoder interface {
	Geocode(query string) (float64, float64, error)
}

// Converter turns the project CSV into a RawDataset.
type Converter struct {
	Geocoder Geocoder
}

// Convert reads, cleans and restructures the CSV at inputPath. Rows without
// an atoll or locality are skipped; a missing or unreadable file is fatal.
func (cv *Converter) Convert(inputPath string) (*types.RawDataset, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", inputPath, err)
	}

	lines := strings.Split(string(data), "\n")
	headerIdx := -1
	for i, line := range lines {
		if strings.Contains(line, headerMarker) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, fmt.Errorf("could not find the main header row in %s", inputPath)
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx:], "\n")))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", inputPath, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows in %s", inputPath)
	}

	cols := columnIndex(records[0])
	var islands []types.RawIsland
	extracted, estimated := 0, 0
	agencies := make(map[string]bool)
	atolls := make(map[string]bool)

	for _, row := range records[1:] {
		get := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		atoll := get("Atoll")
		locality := get("Locality")
		if atoll == "" || locality == "" {
			continue
		}

		mapLink := get("MapLink")
		var latPtr, lngPtr *float64
		source := "unknown"
		if lat, lng, ok := ExtractCoordinates(mapLink); ok {
			latPtr, lngPtr = &lat, &lng
			source = "extracted"
			extracted++
		} else if lat, lng, ok := cv.geocodeFallback(atoll, locality); ok {
			latPtr, lngPtr = &lat, &lng
			source = "estimated"
			estimated++
		}

		raw := types.RawIsland{
			Atoll:      atoll,
			Locality:   locality,
			Population: parseIntCell(get("Population")),
			AreaSqKm:   parseFloatCell(get("Area (in sq km)")),
			MapLink:    mapLink,
			Coordinates: types.RawCoordinates{
				Latitude:  latPtr,
				Longitude: lngPtr,
				Source:    source,
			},
			Projects: types.RawProjects{
				WaterNetwork: types.RawProject{
					Funding:        get("wat_Funding"),
					Phase:          get("wat_Phase"),
					Status:         get("wat_Status"),
					NetworkLengthM: types.FlexString(get("wat_Network (m)")),
					ConnectionsNos: types.FlexString(get("wat_Connections (nos)")),
					TanksM3:        types.FlexString(get("wat_Tanks (m3)")),
				},
				SewerageNetwork: types.RawProject{
					Funding:        get("sew_Funding"),
					Phase:          get("sew_Phase"),
					Status:         get("sew_Status"),
					NetworkLengthM: types.FlexString(get("sew_Network")),
					Connections:    types.FlexString(get("sew_Connections")),
				},
				Harbour: types.RawProject{
					Funding: get("har_Funding"),
					// The source sheet misnames this column and keeps a
					// trailing space.
					Phase:  get("har_hase "),
					Status: get("har_Status"),
					Info:   get("har_Info"),
				},
				DesalinationPlant: types.RawProject{
					Funding: get("des_Funding"),
					Phase:   get("des_Phase "),
					Status:  get("des_Status"),
				},
				ProposedForFunding:   get("Proposed_for_funding"),
				OngoingHarborProject: get("Ongoing_Harbor_Project"),
				UrbanCenters:         get("Urban_centers"),
			},
		}

		for _, funding := range []string{
			raw.Projects.WaterNetwork.Funding,
			raw.Projects.SewerageNetwork.Funding,
			raw.Projects.Harbour.Funding,
			raw.Projects.DesalinationPlant.Funding,
		} {
			if funding != "" {
				agencies[funding] = true
			}
		}
		atolls[atoll] = true
		islands = append(islands, raw)
	}

	ds := &types.RawDataset{
		Metadata: types.DatasetMetadata{
			Title:        "Maldives Infrastructure Projects Data",
			Description:  "Water, Sewerage, Harbour, and Desalination projects across Maldives islands",
			TotalIslands: len(islands),
			CoordinatesInfo: types.CoordinatesInfo{
				ExtractedFromMaps:  extracted,
				EstimatedFromAtoll: estimated,
				Missing:            len(islands) - extracted - estimated,
			},
			FundingAgencies: sortedKeys(agencies),
			Atolls:          sortedKeys(atolls),
		},
		Islands: islands,
	}

	log.Printf("Ingest: %d islands, coordinates extracted=%d estimated=%d missing=%d",
		len(islands), extracted, estimated, ds.Metadata.CoordinatesInfo.Missing)
	return ds, nil
}

// geocodeFallback tries the geocoder first, then the deterministic
// atoll-center estimate.
func (cv *Converter) geocodeFallback(atoll, locality string) (float64, float64, bool) {
	if cv.Geocoder != nil {
		query := fmt.Sprintf("%s, %s Atoll, Maldives", locality, atoll)
		lat, lng, err := cv.Geocoder.Geocode(query)
		if err == nil {
			return lat, lng, true
		}
		log.Printf("Geocode fallback failed for %s: %v", query, err)
	}
	return EstimateCoordinates(atoll, locality)
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	return cols
}

func parseIntCell(s string) *int {
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloatCell(s string) *float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	// Stable metadata regardless of map order.
	sort.Strings(keys)
	return keys
}
