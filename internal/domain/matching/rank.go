package matching

import (
	"sort"
	"strings"

	"rawasi_matching/internal/domain/entities"
)

// AllTech is the tech filter value that matches every provider.
const AllTech = "All"

// Recommendation is a scored catalog entry.
type Recommendation struct {
	Provider entities.ProviderRecord `json:"provider"`
	Score    float64                 `json:"score"`
	EstCost  float64                 `json:"estCost"`
}

// Rank scores every provider for project and orders them by descending
// score. Ties keep catalog order. Providers are normalized first; the catalog
// slice itself is not modified.
func Rank(catalog []entities.ProviderRecord, project *entities.ProjectDescriptor) []Recommendation {
	size := 0.0
	if project != nil {
		size = project.SizeSqm
	}

	out := make([]Recommendation, 0, len(catalog))
	for _, p := range catalog {
		p = p.Normalize()
		out = append(out, Recommendation{
			Provider: p,
			Score:    Score(p, project),
			EstCost:  ProviderCost(p, size),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Filter narrows a ranked list. Tech must be listed by the provider unless it
// is empty or AllTech; Query is a case-insensitive substring of the name.
type Filter struct {
	Tech  string
	Query string
}

// Apply returns the entries of ranked that pass the filter, in the same
// order. ranked is never modified and nothing is re-scored.
func (f Filter) Apply(ranked []Recommendation) []Recommendation {
	query := strings.ToLower(f.Query)
	out := make([]Recommendation, 0, len(ranked))
	for _, r := range ranked {
		if f.Tech != "" && f.Tech != AllTech && !r.Provider.HasTech(f.Tech) {
			continue
		}
		if !strings.Contains(strings.ToLower(r.Provider.Name), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// TechOptions returns AllTech followed by every tech tag in ranked, in the
// order each tag is first seen.
func TechOptions(ranked []Recommendation) []string {
	seen := map[string]struct{}{AllTech: {}}
	out := []string{AllTech}
	for _, r := range ranked {
		for _, t := range r.Provider.Tech {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
