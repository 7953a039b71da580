package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexString decodes a JSON value that may arrive as a string, a number or
// null. The CSV converter emits numeric metrics as numbers but leaves
// hand-edited cells as strings, so both shapes occur in real datasets.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// RawDataset mirrors the nested JSON document the load boundary yields.
type RawDataset struct {
	Metadata DatasetMetadata `json:"metadata" firestore:"metadata"`
	Islands  []RawIsland     `json:"islands" firestore:"islands"`
}

type DatasetMetadata struct {
	Title           string          `json:"title" firestore:"title"`
	Description     string          `json:"description" firestore:"description"`
	TotalIslands    int             `json:"total_islands" firestore:"totalIslands"`
	CoordinatesInfo CoordinatesInfo `json:"coordinates_info" firestore:"coordinatesInfo"`
	FundingAgencies []string        `json:"funding_agencies" firestore:"fundingAgencies"`
	Atolls          []string        `json:"atolls" firestore:"atolls"`
}

// CoordinatesInfo records where each island's coordinates came from during
// ingest.
type CoordinatesInfo struct {
	ExtractedFromMaps  int `json:"extracted_from_maps" firestore:"extractedFromMaps"`
	EstimatedFromAtoll int `json:"estimated_from_atoll" firestore:"estimatedFromAtoll"`
	Missing            int `json:"missing" firestore:"missing"`
}

// RawIsland is one island record in source shape, field names as the CSV
// converter writes them.
type RawIsland struct {
	Atoll       string         `json:"atoll" firestore:"atoll"`
	Locality    string         `json:"locality" firestore:"locality"`
	Population  *int           `json:"population" firestore:"population"`
	AreaSqKm    *float64       `json:"area_sq_km" firestore:"areaSqKm"`
	MapLink     string         `json:"map_link,omitempty" firestore:"mapLink"`
	Coordinates RawCoordinates `json:"coordinates" firestore:"coordinates"`
	Projects    RawProjects    `json:"projects" firestore:"projects"`
}

// RawCoordinates keeps latitude and longitude as pointers so a missing value
// is distinguishable from a real zero.
type RawCoordinates struct {
	Latitude  *float64 `json:"latitude" firestore:"latitude"`
	Longitude *float64 `json:"longitude" firestore:"longitude"`
	Source    string   `json:"source,omitempty" firestore:"source"`
}

type RawProjects struct {
	WaterNetwork      RawProject `json:"water_network" firestore:"waterNetwork"`
	SewerageNetwork   RawProject `json:"sewerage_network" firestore:"sewerageNetwork"`
	Harbour           RawProject `json:"harbour" firestore:"harbour"`
	DesalinationPlant RawProject `json:"desalination_plant" firestore:"desalinationPlant"`

	// Special flags ride along inside the projects object in the source
	// document.
	ProposedForFunding   string `json:"proposed_for_funding" firestore:"proposedForFunding"`
	OngoingHarborProject string `json:"ongoing_harbor_project" firestore:"ongoingHarborProject"`
	UrbanCenters         string `json:"urban_centers" firestore:"urbanCenters"`
}

type RawProject struct {
	Funding        string     `json:"funding" firestore:"funding"`
	Phase          string     `json:"phase" firestore:"phase"`
	Status         string     `json:"status" firestore:"status"`
	NetworkLengthM FlexString `json:"network_length_m" firestore:"networkLengthM"`
	ConnectionsNos FlexString `json:"connections_nos" firestore:"connectionsNos"`
	TanksM3        FlexString `json:"tanks_m3" firestore:"tanksM3"`
	Connections    FlexString `json:"connections" firestore:"connections"`
	Info           string     `json:"info" firestore:"info"`
}
