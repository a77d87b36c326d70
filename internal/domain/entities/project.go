package entities

// ProjectType classifies the owner's construction project.
type ProjectType string

const (
	ProjectTypeResidential ProjectType = "Residential"
	ProjectTypeCommercial  ProjectType = "Commercial"
	ProjectTypeIndustrial  ProjectType = "Industrial"
	ProjectTypeMixedUse    ProjectType = "Mixed-Use"
)

// Complexity selects the base rate and duration factor used by the estimator.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// ProjectDescriptor is the owner's project as captured by the wizard.
//
// While the wizard is running it is a mutable draft kept in the session.
// After submit a copy is stored as the session project and is only read.
type ProjectDescriptor struct {
	Name           string      `json:"name"`
	Type           ProjectType `json:"type"`
	SizeSqm        float64     `json:"sizeSqm"`
	Location       string      `json:"location"`
	Budget         float64     `json:"budget"`
	TimelineMonths float64     `json:"timelineMonths"`
	Complexity     Complexity  `json:"complexity"`
	TechNeeds      []string    `json:"techNeeds"`
}

// HasTech reports whether tag is one of the project's tech needs.
// Matching is exact and case-sensitive.
func (p ProjectDescriptor) HasTech(tag string) bool {
	for _, t := range p.TechNeeds {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so a submitted project does not share the
// draft's tech slice.
func (p ProjectDescriptor) Clone() ProjectDescriptor {
	out := p
	if p.TechNeeds != nil {
		out.TechNeeds = append([]string(nil), p.TechNeeds...)
	}
	return out
}
