package types

import "strings"

// ProjectKind identifies one of the four infrastructure project categories
// tracked per island.
type ProjectKind string

const (
	Water        ProjectKind = "water"
	Sewerage     ProjectKind = "sewerage"
	Harbour      ProjectKind = "harbour"
	Desalination ProjectKind = "desalination"
)

// AllProjectKinds is the fixed iteration order for the four project records.
var AllProjectKinds = []ProjectKind{Water, Sewerage, Harbour, Desalination}

// Flag is the tri-state value of the special island attributes. Source data
// carries "yes"/"no"/empty with inconsistent casing; the value is decided once
// at normalization and downstream code only ever compares against FlagYes.
type Flag string

const (
	FlagYes   Flag = "yes"
	FlagNo    Flag = "no"
	FlagUnset Flag = ""
)

// ParseFlag lowercases and trims a raw flag cell. Anything that is not a
// recognizable yes/no collapses to FlagUnset.
func ParseFlag(raw string) Flag {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		return FlagYes
	case "no":
		return FlagNo
	default:
		return FlagUnset
	}
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ProjectRecord holds funding, phase and status plus the kind-specific
// metrics for one project on one island. A record with empty Funding is
// inactive: it is excluded from agency derivation and statistics.
type ProjectRecord struct {
	Funding string `json:"funding,omitempty"`
	Phase   string `json:"phase,omitempty"`
	Status  string `json:"status,omitempty"`

	// water and sewerage
	NetworkLengthM string `json:"networkLengthM,omitempty"`
	// water
	ConnectionsNos string `json:"connectionsNos,omitempty"`
	TanksM3        string `json:"tanksM3,omitempty"`
	// sewerage
	Connections string `json:"connections,omitempty"`
	// harbour
	Info string `json:"info,omitempty"`
}

func (p ProjectRecord) Active() bool { return p.Funding != "" }

// HasAnyData reports whether at least one of funding, phase or status is set.
func (p ProjectRecord) HasAnyData() bool {
	return p.Funding != "" || p.Phase != "" || p.Status != ""
}

// Projects is the closed set of per-kind records for one island.
type Projects struct {
	Water        ProjectRecord `json:"water"`
	Sewerage     ProjectRecord `json:"sewerage"`
	Harbour      ProjectRecord `json:"harbour"`
	Desalination ProjectRecord `json:"desalination"`
}

// ByKind returns the record for a kind. Unknown kinds yield an empty record,
// which matches nothing downstream.
func (p Projects) ByKind(kind ProjectKind) ProjectRecord {
	switch kind {
	case Water:
		return p.Water
	case Sewerage:
		return p.Sewerage
	case Harbour:
		return p.Harbour
	case Desalination:
		return p.Desalination
	default:
		return ProjectRecord{}
	}
}

// Island is the canonical per-island entity, created once at load and
// immutable for the session. Every retained island has valid coordinates.
type Island struct {
	ID                   string      `json:"id"`
	Atoll                string      `json:"atoll"`
	Locality             string      `json:"locality"`
	Population           *int        `json:"population,omitempty"`
	AreaSqKm             *float64    `json:"areaSqKm,omitempty"`
	Coordinates          Coordinates `json:"coordinates"`
	Projects             Projects    `json:"projects"`
	ProposedForFunding   Flag        `json:"proposedForFunding,omitempty"`
	OngoingHarborProject Flag        `json:"ongoingHarborProject,omitempty"`
	UrbanCenter          Flag        `json:"urbanCenter,omitempty"`
}

// FundingAgencies returns the distinct non-empty funding agencies across the
// four project records, preserving first-seen order. The order matters for
// marker offset assignment.
func (i Island) FundingAgencies() []string {
	var agencies []string
	for _, kind := range AllProjectKinds {
		funding := i.Projects.ByKind(kind).Funding
		if funding == "" {
			continue
		}
		seen := false
		for _, a := range agencies {
			if a == funding {
				seen = true
				break
			}
		}
		if !seen {
			agencies = append(agencies, funding)
		}
	}
	return agencies
}

// Special filter names as the UI layer supplies them.
const (
	SpecialProposedForFunding = "proposedForFunding"
	SpecialOngoingHarbor      = "ongoingHarbor"
	SpecialUrbanCenters       = "urbanCenters"
)

// SpecialFilterNames lists the three special filters in display order.
var SpecialFilterNames = []string{SpecialProposedForFunding, SpecialOngoingHarbor, SpecialUrbanCenters}

// SpecialFlag resolves a special filter name to the island's flag value.
// The second return is false for unrecognized names.
func (i Island) SpecialFlag(name string) (Flag, bool) {
	switch name {
	case SpecialProposedForFunding:
		return i.ProposedForFunding, true
	case SpecialOngoingHarbor:
		return i.OngoingHarborProject, true
	case SpecialUrbanCenters:
		return i.UrbanCenter, true
	default:
		return FlagUnset, false
	}
}
