package matching

import (
	"testing"

	"rawasi_matching/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoProviders() []entities.ProviderRecord {
	return []entities.ProviderRecord{
		{ID: "prv-neo", Name: "NeoBuild Technologies", Location: "Riyadh", Rating: 4.7, Reviews: 128, BaseCost: 1200000, CostPerSqm: 4500, TimelineSpeed: 0.9, Tech: []string{"3D Printing", "Prefabrication", "AI QC"}, PastProjects: 42},
		{ID: "prv-sky", Name: "SkyRise Modular", Location: "Jeddah", Rating: 4.5, Reviews: 94, BaseCost: 900000, CostPerSqm: 3800, TimelineSpeed: 0.8, Tech: []string{"Modular", "Prefabrication", "BIM"}, PastProjects: 51},
		{ID: "prv-zen", Name: "Zenith Construct AI", Location: "Dammam", Rating: 4.8, Reviews: 201, BaseCost: 1500000, CostPerSqm: 5200, TimelineSpeed: 0.75, Tech: []string{"AI Scheduling", "Robotics", "BIM"}, PastProjects: 67},
		{ID: "prv-ora", Name: "Orion Smart Build", Location: "Mecca", Rating: 4.2, Reviews: 61, BaseCost: 700000, CostPerSqm: 3200, TimelineSpeed: 1.0, Tech: []string{"Green Concrete", "BIM"}, PastProjects: 23},
	}
}

func bimProject() *entities.ProjectDescriptor {
	return &entities.ProjectDescriptor{
		Name:           "Tower",
		Type:           entities.ProjectTypeResidential,
		SizeSqm:        1500,
		Location:       "Riyadh",
		Budget:         2000000,
		TimelineMonths: 12,
		Complexity:     entities.ComplexityMedium,
		TechNeeds:      []string{"BIM"},
	}
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	require.NoError(t, w.Validate())
	assert.InDelta(t, 1.0, w.Sum(), 1e-12)

	w.Speed = -0.14
	w.BudgetFit += 0.28
	assert.Error(t, w.Validate())

	w = DefaultWeights()
	w.Rating = 0.5
	assert.Error(t, w.Validate())
}

func TestScore_NilProject(t *testing.T) {
	for _, p := range demoProviders() {
		assert.Equal(t, 0.0, Score(p, nil))
		assert.Equal(t, Breakdown{}, ScoreBreakdown(p, nil))
	}
}

func TestScore_KnownValues(t *testing.T) {
	project := bimProject()
	want := map[string]float64{
		"prv-neo": 0.3968,
		"prv-sky": 0.598,
		"prv-zen": 0.6365,
		"prv-ora": 0.5242,
	}
	for _, p := range demoProviders() {
		assert.InDelta(t, want[p.ID], Score(p, project), 1e-9, p.ID)
	}
}

func TestScore_Bounds(t *testing.T) {
	projects := []*entities.ProjectDescriptor{
		bimProject(),
		{SizeSqm: 0, Budget: 0},
		{SizeSqm: 100000, Budget: 1, TechNeeds: []string{"BIM", "Robotics", "Unknown"}},
		{SizeSqm: 10, Budget: 1e12, Location: "Jeddah"},
	}
	providers := append(demoProviders(),
		entities.ProviderRecord{ID: "fast", Rating: 5, TimelineSpeed: 0.1, PastProjects: 1000, Tech: []string{"BIM"}},
		entities.ProviderRecord{ID: "slow", Rating: 0, TimelineSpeed: 50},
	)
	for _, project := range projects {
		for _, p := range providers {
			s := Score(p, project)
			assert.GreaterOrEqual(t, s, 0.0, p.ID)
			assert.LessOrEqual(t, s, 1.0, p.ID)
		}
	}
}

func TestScore_BudgetFitPeaksAtExactCost(t *testing.T) {
	p := entities.ProviderRecord{ID: "p", BaseCost: 1000000, CostPerSqm: 1000, Rating: 4, TimelineSpeed: 1, PastProjects: 10}
	project := &entities.ProjectDescriptor{SizeSqm: 1000, Budget: 2000000}

	exact := ScoreBreakdown(p, project)
	assert.Equal(t, 1.0, exact.BudgetFit)

	for _, budget := range []float64{1000000, 1900000, 2100000, 5000000} {
		other := *project
		other.Budget = budget
		assert.Less(t, ScoreBreakdown(p, &other).BudgetFit, 1.0)
		assert.Less(t, Score(p, &other), Score(p, project))
	}
}

func TestScore_BudgetFitZeroBudget(t *testing.T) {
	p := entities.ProviderRecord{TimelineSpeed: 1}
	b := ScoreBreakdown(p, &entities.ProjectDescriptor{})
	assert.Equal(t, 1.0, b.BudgetFit)

	p.BaseCost = 10
	b = ScoreBreakdown(p, &entities.ProjectDescriptor{})
	assert.Equal(t, 0.0, b.BudgetFit)
}

func TestScore_EmptyTechNeedsIsNeutral(t *testing.T) {
	project := bimProject()
	project.TechNeeds = nil
	for _, p := range demoProviders() {
		assert.Equal(t, 0.6, ScoreBreakdown(p, project).TechMatch, p.ID)
	}

	a := demoProviders()[0]
	b := a
	b.Tech = []string{"Something", "Else"}
	assert.Equal(t, Score(a, project), Score(b, project))
}

func TestScore_TechMatchIsExact(t *testing.T) {
	p := entities.ProviderRecord{Tech: []string{"BIM", "Robotics"}, TimelineSpeed: 1}
	project := &entities.ProjectDescriptor{TechNeeds: []string{"bim", "Robotics"}}
	assert.Equal(t, 0.5, ScoreBreakdown(p, project).TechMatch)
}

func TestScore_ExperienceSaturates(t *testing.T) {
	project := bimProject()
	base := demoProviders()[1]

	prev := -1.0
	for _, n := range []int{0, 10, 40, 79, 80} {
		p := base
		p.PastProjects = n
		e := ScoreBreakdown(p, project).Experience
		assert.GreaterOrEqual(t, e, prev)
		prev = e
	}

	at80 := base
	at80.PastProjects = 80
	above := base
	above.PastProjects = 300
	assert.Equal(t, Score(at80, project), Score(above, project))
}

func TestScore_SpeedAndLocation(t *testing.T) {
	project := &entities.ProjectDescriptor{Location: "Riyadh"}

	b := ScoreBreakdown(entities.ProviderRecord{TimelineSpeed: 1, Location: "Riyadh"}, project)
	assert.Equal(t, 0.5, b.Speed)
	assert.Equal(t, 1.0, b.LocationAffinity)

	b = ScoreBreakdown(entities.ProviderRecord{TimelineSpeed: 0.5, Location: "Jeddah"}, project)
	assert.Equal(t, 1.0, b.Speed)
	assert.Equal(t, 0.6, b.LocationAffinity)

	b = ScoreBreakdown(entities.ProviderRecord{TimelineSpeed: 4}, project)
	assert.Equal(t, 0.0, b.Speed)
}

func TestScore_EmptyProjectLocationDefaultsToRiyadh(t *testing.T) {
	project := &entities.ProjectDescriptor{Budget: 1}

	b := ScoreBreakdown(entities.ProviderRecord{TimelineSpeed: 1, Location: "Riyadh"}, project)
	assert.Equal(t, 1.0, b.LocationAffinity)

	b = ScoreBreakdown(entities.ProviderRecord{TimelineSpeed: 1, Location: "Jeddah"}, project)
	assert.Equal(t, 0.6, b.LocationAffinity)
	assert.Empty(t, project.Location)
}

func TestScore_DoesNotMutateInputs(t *testing.T) {
	project := bimProject()
	p := demoProviders()[0]
	before := append([]string(nil), p.Tech...)

	first := Score(p, project)
	second := Score(p, project)

	assert.Equal(t, first, second)
	assert.Equal(t, before, p.Tech)
	assert.Equal(t, []string{"BIM"}, project.TechNeeds)
}
