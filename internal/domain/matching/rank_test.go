package matching

import (
	"testing"

	"rawasi_matching/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(recs []Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Provider.ID)
	}
	return out
}

func TestRank_OrdersByScore(t *testing.T) {
	ranked := Rank(demoProviders(), bimProject())
	assert.Equal(t, []string{"prv-zen", "prv-sky", "prv-ora", "prv-neo"}, ids(ranked))

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	assert.Equal(t, 1500000.0+5200*1500, ranked[0].EstCost)
}

func TestRank_StableOnTies(t *testing.T) {
	p := entities.ProviderRecord{Name: "Same", Location: "Riyadh", Rating: 4, TimelineSpeed: 1, PastProjects: 10}
	a, b, c := p, p, p
	a.ID, b.ID, c.ID = "A", "B", "C"

	ranked := Rank([]entities.ProviderRecord{a, b, c}, bimProject())
	assert.Equal(t, []string{"A", "B", "C"}, ids(ranked))

	ranked = Rank(demoProviders(), nil)
	assert.Equal(t, []string{"prv-neo", "prv-sky", "prv-zen", "prv-ora"}, ids(ranked))
	for _, r := range ranked {
		assert.Equal(t, 0.0, r.Score)
		assert.Equal(t, r.Provider.BaseCost, r.EstCost)
	}
}

func TestRank_EmptyCatalog(t *testing.T) {
	ranked := Rank(nil, bimProject())
	require.NotNil(t, ranked)
	assert.Empty(t, ranked)
	assert.Equal(t, []string{AllTech}, TechOptions(ranked))
}

func TestRank_NormalizesMissingFields(t *testing.T) {
	catalog := []entities.ProviderRecord{{ID: "bare", Name: "Bare Provider"}}
	ranked := Rank(catalog, bimProject())
	require.Len(t, ranked, 1)

	got := ranked[0].Provider
	assert.Equal(t, []string{}, got.Tech)
	assert.Equal(t, []string{}, got.Photos)
	assert.Equal(t, entities.DefaultProviderLocation, got.Location)
	assert.Equal(t, 1.0, got.TimelineSpeed)
	assert.Nil(t, catalog[0].Tech)
}

func TestFilter_Apply(t *testing.T) {
	ranked := Rank(demoProviders(), bimProject())
	snapshot := append([]Recommendation(nil), ranked...)

	cases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "all", filter: Filter{Tech: AllTech}, want: []string{"prv-zen", "prv-sky", "prv-ora", "prv-neo"}},
		{name: "empty filter", filter: Filter{}, want: []string{"prv-zen", "prv-sky", "prv-ora", "prv-neo"}},
		{name: "tech", filter: Filter{Tech: "Prefabrication"}, want: []string{"prv-sky", "prv-neo"}},
		{name: "query case insensitive", filter: Filter{Tech: AllTech, Query: "BUILD"}, want: []string{"prv-ora", "prv-neo"}},
		{name: "tech and query", filter: Filter{Tech: "BIM", Query: "zen"}, want: []string{"prv-zen"}},
		{name: "no match", filter: Filter{Tech: "Robotics", Query: "orion"}, want: []string{}},
		{name: "tech is exact", filter: Filter{Tech: "bim"}, want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(tc.filter.Apply(ranked)))
		})
	}
	assert.Equal(t, snapshot, ranked)
}

func TestTechOptions(t *testing.T) {
	ranked := Rank(demoProviders(), bimProject())
	assert.Equal(t, []string{
		AllTech,
		"AI Scheduling", "Robotics", "BIM",
		"Modular", "Prefabrication",
		"Green Concrete",
		"3D Printing", "AI QC",
	}, TechOptions(ranked))
}
