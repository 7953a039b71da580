package types

// FilterCriteria is the session's multi-dimensional filter selection. An
// empty slice means "no restriction on that dimension"; within a dimension
// any selected value matches, and dimensions combine as a conjunction.
type FilterCriteria struct {
	Funding            []string `json:"funding"`
	Phase              []string `json:"phase"`
	ProjectType        []string `json:"projectType"`
	ProposedForFunding bool     `json:"proposedForFunding"`
	OngoingHarbor      bool     `json:"ongoingHarbor"`
	UrbanCenters       bool     `json:"urbanCenters"`
}

// AgencyDimensionsEmpty reports whether none of the agency-coupled
// dimensions (funding, phase, project type) restrict the selection.
func (c FilterCriteria) AgencyDimensionsEmpty() bool {
	return len(c.Funding) == 0 && len(c.Phase) == 0 && len(c.ProjectType) == 0
}

// Unrestricted reports whether the criteria are at their initial,
// everything-visible value.
func (c FilterCriteria) Unrestricted() bool {
	return c.AgencyDimensionsEmpty() &&
		!c.ProposedForFunding && !c.OngoingHarbor && !c.UrbanCenters
}
