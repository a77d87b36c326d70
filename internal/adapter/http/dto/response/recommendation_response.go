package response

import (
	"rawasi_matching/internal/domain/dashboard"
	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/domain/matching"
	"rawasi_matching/internal/usecase"
)

type ProviderResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	BaseCost      float64  `json:"base_cost"`
	CostPerSqm    float64  `json:"cost_per_sqm"`
	TimelineSpeed float64  `json:"timeline_speed"`
	Tech          []string `json:"tech"`
	PastProjects  int      `json:"past_projects"`
	Photos        []string `json:"photos"`
	Logo          string   `json:"logo,omitempty"`
	URL           string   `json:"url,omitempty"`
	Website       string   `json:"website,omitempty"`
	Phone         string   `json:"phone,omitempty"`
}

type RecommendationResponse struct {
	Provider ProviderResponse `json:"provider"`
	Score    float64          `json:"score"`
	EstCost  float64          `json:"est_cost"`
}

type RecommendationsResponse struct {
	Source      string                   `json:"source"`
	Project     *ProjectResponse         `json:"project,omitempty"`
	Total       int                      `json:"total"`
	TechOptions []string                 `json:"tech_options"`
	Items       []RecommendationResponse `json:"items"`
}

type BreakdownResponse struct {
	BudgetFit        float64 `json:"budget_fit"`
	TechMatch        float64 `json:"tech_match"`
	Rating           float64 `json:"rating"`
	Speed            float64 `json:"speed"`
	LocationAffinity float64 `json:"location_affinity"`
	Experience       float64 `json:"experience"`
}

type CompareItemResponse struct {
	RecommendationResponse
	Breakdown BreakdownResponse `json:"breakdown"`
}

type CompareResponse struct {
	Max   int                   `json:"max"`
	Items []CompareItemResponse `json:"items"`
}

type EstimateResponse struct {
	EstCost       int64   `json:"est_cost"`
	EstTimeMonths int     `json:"est_time_months"`
	Risk          float64 `json:"risk"`
}

type TaskResponse struct {
	Name          string `json:"name"`
	StartWeek     int    `json:"start_week"`
	DurationWeeks int    `json:"duration_weeks"`
}

type DashboardResponse struct {
	Demo           bool              `json:"demo"`
	ProjectName    string            `json:"project_name"`
	Budget         float64           `json:"budget"`
	TimelineMonths float64           `json:"timeline_months"`
	TotalWeeks     int               `json:"total_weeks"`
	Progress       float64           `json:"progress"`
	BudgetUsed     float64           `json:"budget_used"`
	Tasks          []TaskResponse    `json:"tasks"`
	NextMilestone  TaskResponse      `json:"next_milestone"`
	Estimate       *EstimateResponse `json:"estimate,omitempty"`
}

func FromProvider(p entities.ProviderRecord) ProviderResponse {
	p = p.Normalize()
	return ProviderResponse{
		ID:            p.ID,
		Name:          p.Name,
		Location:      p.Location,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		BaseCost:      p.BaseCost,
		CostPerSqm:    p.CostPerSqm,
		TimelineSpeed: p.TimelineSpeed,
		Tech:          p.Tech,
		PastProjects:  p.PastProjects,
		Photos:        p.Photos,
		Logo:          p.Logo,
		URL:           p.URL,
		Website:       p.Website,
		Phone:         p.Phone,
	}
}

func FromRecommendation(r matching.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		Provider: FromProvider(r.Provider),
		Score:    r.Score,
		EstCost:  r.EstCost,
	}
}

func FromRecommendations(r usecase.RecommendationResult) RecommendationsResponse {
	items := make([]RecommendationResponse, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		items = append(items, FromRecommendation(rec))
	}
	res := RecommendationsResponse{
		Source:      r.Source,
		Total:       r.Total,
		TechOptions: r.TechOptions,
		Items:       items,
	}
	if r.Project != nil {
		p := FromProject(*r.Project)
		res.Project = &p
	}
	return res
}

func FromCompare(items []usecase.CompareItem) CompareResponse {
	out := make([]CompareItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CompareItemResponse{
			RecommendationResponse: FromRecommendation(it.Recommendation),
			Breakdown: BreakdownResponse{
				BudgetFit:        it.Breakdown.BudgetFit,
				TechMatch:        it.Breakdown.TechMatch,
				Rating:           it.Breakdown.Rating,
				Speed:            it.Breakdown.Speed,
				LocationAffinity: it.Breakdown.LocationAffinity,
				Experience:       it.Breakdown.Experience,
			},
		})
	}
	return CompareResponse{Max: matching.MaxCompare, Items: out}
}

func FromEstimate(e matching.ProjectEstimate) EstimateResponse {
	return EstimateResponse{
		EstCost:       e.EstCost,
		EstTimeMonths: e.EstTimeMonths,
		Risk:          e.Risk,
	}
}

func FromDashboard(s dashboard.Summary) DashboardResponse {
	tasks := make([]TaskResponse, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		tasks = append(tasks, fromTask(t))
	}
	res := DashboardResponse{
		Demo:           s.Demo,
		ProjectName:    s.ProjectName,
		Budget:         s.Budget,
		TimelineMonths: s.TimelineMonths,
		TotalWeeks:     s.TotalWeeks,
		Progress:       s.Progress,
		BudgetUsed:     s.BudgetUsed,
		Tasks:          tasks,
		NextMilestone:  fromTask(s.NextMilestone),
	}
	if s.Estimate != nil {
		e := FromEstimate(*s.Estimate)
		res.Estimate = &e
	}
	return res
}

func fromTask(t dashboard.Task) TaskResponse {
	return TaskResponse{Name: t.Name, StartWeek: t.StartWeek, DurationWeeks: t.DurationWeeks}
}
