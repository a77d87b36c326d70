package request

import (
	"errors"
	"strings"

	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/domain/matching"
)

var (
	ErrNavigationTargetRequired  = errors.New("either stage or action is required")
	ErrNavigationTargetAmbiguous = errors.New("stage and action are mutually exclusive")
)

// DraftRequest replaces the wizard draft of a session.
type DraftRequest struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	SizeSqm        float64  `json:"size_sqm"`
	Location       string   `json:"location"`
	Budget         float64  `json:"budget"`
	TimelineMonths float64  `json:"timeline_months"`
	Complexity     string   `json:"complexity"`
	TechNeeds      []string `json:"tech_needs"`
}

func (r DraftRequest) ToDescriptor() entities.ProjectDescriptor {
	needs := make([]string, 0, len(r.TechNeeds))
	for _, t := range r.TechNeeds {
		if t = strings.TrimSpace(t); t != "" {
			needs = append(needs, t)
		}
	}
	return entities.ProjectDescriptor{
		Name:           strings.TrimSpace(r.Name),
		Type:           entities.ProjectType(strings.TrimSpace(r.Type)),
		SizeSqm:        r.SizeSqm,
		Location:       strings.TrimSpace(r.Location),
		Budget:         r.Budget,
		TimelineMonths: r.TimelineMonths,
		Complexity:     entities.Complexity(strings.ToLower(strings.TrimSpace(r.Complexity))),
		TechNeeds:      needs,
	}
}

// NavigateRequest asks for a stage directly or through a flow action.
type NavigateRequest struct {
	Stage  string `json:"stage"`
	Action string `json:"action"`
}

// Resolve returns exactly one of the requested stage or action.
func (r NavigateRequest) Resolve() (entities.Stage, matching.Action, error) {
	stage := strings.TrimSpace(r.Stage)
	action := strings.TrimSpace(r.Action)
	switch {
	case stage == "" && action == "":
		return "", "", ErrNavigationTargetRequired
	case stage != "" && action != "":
		return "", "", ErrNavigationTargetAmbiguous
	case stage != "":
		return entities.Stage(strings.ToLower(stage)), "", nil
	default:
		return "", matching.Action(strings.ToLower(action)), nil
	}
}

// RecommendationQuery is bound from the recommendations query string.
type RecommendationQuery struct {
	Tech  string `form:"tech"`
	Query string `form:"q"`
}

func (q RecommendationQuery) ToFilter() matching.Filter {
	return matching.Filter{
		Tech:  strings.TrimSpace(q.Tech),
		Query: strings.TrimSpace(q.Query),
	}
}
