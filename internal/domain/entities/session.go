package entities

import "time"

// Stage identifies one screen of the owner's flow.
type Stage string

const (
	StageProject         Stage = "project"
	StageRecommendations Stage = "recs"
	StageCompare         Stage = "compare"
	StageMessages        Stage = "messages"
	StageDashboard       Stage = "dashboard"
)

// Stages lists every stage in flow order.
var Stages = []Stage{StageProject, StageRecommendations, StageCompare, StageMessages, StageDashboard}

// Valid reports whether s is a known stage identifier.
func (s Stage) Valid() bool {
	for _, st := range Stages {
		if st == s {
			return true
		}
	}
	return false
}

// Session holds the owner's mutable state between requests.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Single writers:
//   - Draft/WizardStep/Project: the wizard
//   - Compare/PickedProviderID: compare toggle and pick
//   - Stage: the flow controller
//
// Flow guard inputs (has project, has selection) are derived from Project and
// Compare and never stored separately.
type Session struct {
	ID               string             `json:"id"`
	Draft            ProjectDescriptor  `json:"draft"`
	WizardStep       int                `json:"wizardStep"`
	Project          *ProjectDescriptor `json:"project,omitempty"`
	Compare          []string           `json:"compare"`
	PickedProviderID string             `json:"pickedProviderId,omitempty"`
	Stage            Stage              `json:"stage"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}
