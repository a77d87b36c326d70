// Package matching holds the pure decision logic of the service: provider
// scoring, project estimation, ranking, compare selection and stage gating.
// Nothing here performs I/O or keeps state between calls.
package matching

import (
	"fmt"
	"math"

	"rawasi_matching/internal/domain/entities"
)

// Policy constants. They are kept exactly as the product defined them and are
// not derived from data.
const (
	neutralTechMatch   = 0.6
	remoteLocationFit  = 0.6
	maxRating          = 5.0
	speedOffset        = 0.5
	experienceCeiling  = 80.0
	scoreDecimalFactor = 1e4

	// DefaultProjectLocation is scored for a project without a location.
	DefaultProjectLocation = "Riyadh"
)

// WeightSet is the relative importance of each sub-score. Weights sum to 1.
type WeightSet struct {
	BudgetFit        float64
	TechMatch        float64
	Rating           float64
	Speed            float64
	LocationAffinity float64
	Experience       float64
}

// DefaultWeights returns the fixed scoring weights.
func DefaultWeights() WeightSet {
	return WeightSet{
		BudgetFit:        0.28,
		TechMatch:        0.22,
		Rating:           0.18,
		Speed:            0.14,
		LocationAffinity: 0.10,
		Experience:       0.08,
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.BudgetFit + w.TechMatch + w.Rating + w.Speed + w.LocationAffinity + w.Experience
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w WeightSet) Validate() error {
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.BudgetFit, w.TechMatch, w.Rating, w.Speed, w.LocationAffinity, w.Experience} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}

// Breakdown is the set of normalized sub-scores behind a fit score.
type Breakdown struct {
	BudgetFit        float64 `json:"budgetFit"`
	TechMatch        float64 `json:"techMatch"`
	Rating           float64 `json:"rating"`
	Speed            float64 `json:"speed"`
	LocationAffinity float64 `json:"locationAffinity"`
	Experience       float64 `json:"experience"`
}

// Weighted applies w to the breakdown.
func (b Breakdown) Weighted(w WeightSet) float64 {
	return w.BudgetFit*b.BudgetFit +
		w.TechMatch*b.TechMatch +
		w.Rating*b.Rating +
		w.Speed*b.Speed +
		w.LocationAffinity*b.LocationAffinity +
		w.Experience*b.Experience
}

// ProviderCost is the provider-specific quote for a project of sizeSqm.
func ProviderCost(provider entities.ProviderRecord, sizeSqm float64) float64 {
	return provider.BaseCost + provider.CostPerSqm*sizeSqm
}

// ScoreBreakdown computes the sub-scores of provider against project.
// A nil project yields the zero breakdown. An empty project location is
// scored as DefaultProjectLocation.
func ScoreBreakdown(provider entities.ProviderRecord, project *entities.ProjectDescriptor) Breakdown {
	if project == nil {
		return Breakdown{}
	}

	cost := ProviderCost(provider, project.SizeSqm)
	b := Breakdown{
		BudgetFit:        clamp01(1 - math.Abs(cost-project.Budget)/math.Max(project.Budget, 1)),
		TechMatch:        techMatch(provider, project.TechNeeds),
		Rating:           provider.Rating / maxRating,
		Speed:            clamp01(1/provider.TimelineSpeed - speedOffset),
		LocationAffinity: remoteLocationFit,
		Experience:       clamp01(float64(provider.PastProjects) / experienceCeiling),
	}
	location := project.Location
	if location == "" {
		location = DefaultProjectLocation
	}
	if provider.Location == location {
		b.LocationAffinity = 1
	}
	return b
}

// Score returns the fit of provider for project in [0,1], rounded to four
// decimals. There is nothing to score against without a project, so a nil
// project scores 0.
func Score(provider entities.ProviderRecord, project *entities.ProjectDescriptor) float64 {
	if project == nil {
		return 0
	}
	return round4(ScoreBreakdown(provider, project).Weighted(DefaultWeights()))
}

func techMatch(provider entities.ProviderRecord, needs []string) float64 {
	if len(needs) == 0 {
		return neutralTechMatch
	}
	matched := 0
	for _, n := range needs {
		if provider.HasTech(n) {
			matched++
		}
	}
	return clamp01(float64(matched) / float64(len(needs)))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round4(v float64) float64 {
	return math.Round(v*scoreDecimalFactor) / scoreDecimalFactor
}
