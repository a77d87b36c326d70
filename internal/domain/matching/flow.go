package matching

import "rawasi_matching/internal/domain/entities"

// FlowState is the input to the stage guards. It is always derived from the
// latest session snapshot.
type FlowState struct {
	HasProject          bool `json:"hasProject"`
	HasCompareSelection bool `json:"hasCompareSelection"`
}

// StateOf derives the guard inputs from a session.
func StateOf(s entities.Session) FlowState {
	return FlowState{
		HasProject:          s.Project != nil,
		HasCompareSelection: len(s.Compare) > 0,
	}
}

// Action is an explicit user action that moves the flow.
type Action string

const (
	ActionSubmitProject      Action = "submit-project"
	ActionProceedToCompare   Action = "proceed-to-compare"
	ActionProceedToMessages  Action = "proceed-to-messages"
	ActionProceedToDashboard Action = "proceed-to-dashboard"
	ActionStartProject       Action = "start-project"
)

var actionTargets = map[Action]entities.Stage{
	ActionSubmitProject:      entities.StageRecommendations,
	ActionProceedToCompare:   entities.StageCompare,
	ActionProceedToMessages:  entities.StageMessages,
	ActionProceedToDashboard: entities.StageDashboard,
	ActionStartProject:       entities.StageProject,
}

// TargetFor returns the stage an action asks for.
func TargetFor(a Action) (entities.Stage, bool) {
	st, ok := actionTargets[a]
	return st, ok
}

// CanEnter reports whether stage is reachable in state.
func CanEnter(stage entities.Stage, state FlowState) bool {
	switch stage {
	case entities.StageProject, entities.StageDashboard:
		return true
	case entities.StageRecommendations:
		return state.HasProject
	case entities.StageCompare:
		return state.HasProject && state.HasCompareSelection
	case entities.StageMessages:
		return state.HasCompareSelection
	default:
		return false
	}
}

// redirect is the stage a blocked request falls back to.
func redirect(stage entities.Stage, state FlowState) entities.Stage {
	switch stage {
	case entities.StageCompare:
		if !state.HasProject {
			return entities.StageProject
		}
		return entities.StageRecommendations
	case entities.StageMessages:
		return entities.StageRecommendations
	default:
		return entities.StageProject
	}
}

// ResolveTarget returns the stage actually shown for a request. Redirects are
// followed until a reachable stage is found; Project is always reachable so
// the chain terminates.
func ResolveTarget(requested entities.Stage, state FlowState) entities.Stage {
	st := requested
	for i := 0; i < len(entities.Stages); i++ {
		if CanEnter(st, state) {
			return st
		}
		st = redirect(st, state)
	}
	return entities.StageProject
}

// Navigate moves from current towards requested. It returns the stage to show
// and whether it differs from current; entering the active stage is a no-op.
func Navigate(current, requested entities.Stage, state FlowState) (entities.Stage, bool) {
	next := ResolveTarget(requested, state)
	return next, next != current
}
