package matching

import (
	"testing"

	"rawasi_matching/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

var (
	noProject       = FlowState{}
	projectOnly     = FlowState{HasProject: true}
	projectAndPicks = FlowState{HasProject: true, HasCompareSelection: true}
	picksOnly       = FlowState{HasCompareSelection: true}
)

func TestCanEnter(t *testing.T) {
	cases := []struct {
		stage entities.Stage
		state FlowState
		want  bool
	}{
		{entities.StageProject, noProject, true},
		{entities.StageDashboard, noProject, true},
		{entities.StageRecommendations, noProject, false},
		{entities.StageRecommendations, projectOnly, true},
		{entities.StageCompare, projectOnly, false},
		{entities.StageCompare, picksOnly, false},
		{entities.StageCompare, projectAndPicks, true},
		{entities.StageMessages, projectOnly, false},
		{entities.StageMessages, picksOnly, true},
		{entities.StageMessages, projectAndPicks, true},
		{entities.Stage("nope"), projectAndPicks, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanEnter(tc.stage, tc.state), "%s %+v", tc.stage, tc.state)
	}
}

func TestResolveTarget(t *testing.T) {
	cases := []struct {
		name      string
		requested entities.Stage
		state     FlowState
		want      entities.Stage
	}{
		{"recs without project", entities.StageRecommendations, noProject, entities.StageProject},
		{"messages without selection", entities.StageMessages, projectOnly, entities.StageRecommendations},
		{"messages without anything", entities.StageMessages, noProject, entities.StageProject},
		{"compare without project", entities.StageCompare, picksOnly, entities.StageProject},
		{"compare without selection", entities.StageCompare, projectOnly, entities.StageRecommendations},
		{"compare allowed", entities.StageCompare, projectAndPicks, entities.StageCompare},
		{"dashboard always", entities.StageDashboard, noProject, entities.StageDashboard},
		{"unknown stage", entities.Stage("admin"), projectAndPicks, entities.StageProject},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveTarget(tc.requested, tc.state)
			assert.Equal(t, tc.want, got)
			assert.True(t, CanEnter(got, tc.state))
		})
	}
}

func TestResolveTarget_AlwaysReachable(t *testing.T) {
	states := []FlowState{noProject, projectOnly, picksOnly, projectAndPicks}
	for _, st := range states {
		for _, stage := range entities.Stages {
			assert.True(t, CanEnter(ResolveTarget(stage, st), st))
		}
	}
}

func TestNavigate(t *testing.T) {
	next, changed := Navigate(entities.StageProject, entities.StageProject, noProject)
	assert.Equal(t, entities.StageProject, next)
	assert.False(t, changed)

	next, changed = Navigate(entities.StageProject, entities.StageRecommendations, noProject)
	assert.Equal(t, entities.StageProject, next)
	assert.False(t, changed)

	next, changed = Navigate(entities.StageProject, entities.StageRecommendations, projectOnly)
	assert.Equal(t, entities.StageRecommendations, next)
	assert.True(t, changed)

	next, changed = Navigate(entities.StageDashboard, entities.StageProject, projectAndPicks)
	assert.Equal(t, entities.StageProject, next)
	assert.True(t, changed)
}

func TestTargetFor(t *testing.T) {
	cases := map[Action]entities.Stage{
		ActionSubmitProject:      entities.StageRecommendations,
		ActionProceedToCompare:   entities.StageCompare,
		ActionProceedToMessages:  entities.StageMessages,
		ActionProceedToDashboard: entities.StageDashboard,
		ActionStartProject:       entities.StageProject,
	}
	for a, want := range cases {
		got, ok := TargetFor(a)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := TargetFor("fly")
	assert.False(t, ok)
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, noProject, StateOf(entities.Session{}))
	assert.Equal(t, projectAndPicks, StateOf(entities.Session{
		Project: &entities.ProjectDescriptor{Name: "p"},
		Compare: []string{"a"},
	}))
}
