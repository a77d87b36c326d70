package response

import (
	"time"

	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/domain/matching"
	"rawasi_matching/internal/domain/wizard"
	"rawasi_matching/internal/usecase"
)

type ProjectResponse struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	SizeSqm        float64  `json:"size_sqm"`
	Location       string   `json:"location"`
	Budget         float64  `json:"budget"`
	TimelineMonths float64  `json:"timeline_months"`
	Complexity     string   `json:"complexity"`
	TechNeeds      []string `json:"tech_needs"`
}

// FlowResponse exposes the guard inputs and which stages are enterable, so
// clients can disable navigation instead of relying on redirects.
type FlowResponse struct {
	HasProject          bool            `json:"has_project"`
	HasCompareSelection bool            `json:"has_compare_selection"`
	CanEnter            map[string]bool `json:"can_enter"`
}

type SessionResponse struct {
	ID               string           `json:"id"`
	Stage            string           `json:"stage"`
	WizardStep       int              `json:"wizard_step"`
	Draft            ProjectResponse  `json:"draft"`
	Cities           []string         `json:"cities"`
	Project          *ProjectResponse `json:"project,omitempty"`
	Compare          []string         `json:"compare"`
	PickedProviderID string           `json:"picked_provider_id,omitempty"`
	Flow             FlowResponse     `json:"flow"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type NavigationResponse struct {
	Requested  string          `json:"requested"`
	Stage      string          `json:"stage"`
	Redirected bool            `json:"redirected"`
	Changed    bool            `json:"changed"`
	Session    SessionResponse `json:"session"`
}

func FromProject(p entities.ProjectDescriptor) ProjectResponse {
	needs := p.TechNeeds
	if needs == nil {
		needs = []string{}
	}
	return ProjectResponse{
		Name:           p.Name,
		Type:           string(p.Type),
		SizeSqm:        p.SizeSqm,
		Location:       p.Location,
		Budget:         p.Budget,
		TimelineMonths: p.TimelineMonths,
		Complexity:     string(p.Complexity),
		TechNeeds:      needs,
	}
}

func FromSession(s entities.Session) SessionResponse {
	state := matching.StateOf(s)
	canEnter := make(map[string]bool, len(entities.Stages))
	for _, st := range entities.Stages {
		canEnter[string(st)] = matching.CanEnter(st, state)
	}

	compare := s.Compare
	if compare == nil {
		compare = []string{}
	}

	res := SessionResponse{
		ID:               s.ID,
		Stage:            string(s.Stage),
		WizardStep:       s.WizardStep,
		Draft:            FromProject(s.Draft),
		Cities:           append([]string(nil), wizard.Cities...),
		Compare:          compare,
		PickedProviderID: s.PickedProviderID,
		Flow: FlowResponse{
			HasProject:          state.HasProject,
			HasCompareSelection: state.HasCompareSelection,
			CanEnter:            canEnter,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Project != nil {
		p := FromProject(*s.Project)
		res.Project = &p
	}
	return res
}

func FromNavigation(r usecase.NavigationResult) NavigationResponse {
	return NavigationResponse{
		Requested:  string(r.Requested),
		Stage:      string(r.Stage),
		Redirected: r.Redirected,
		Changed:    r.Changed,
		Session:    FromSession(r.Session),
	}
}
