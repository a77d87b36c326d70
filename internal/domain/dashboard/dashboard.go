// Package dashboard builds the read-only project summary shown on the last
// stage. Without a project it falls back to demo figures.
package dashboard

import (
	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/domain/matching"
)

const (
	DemoProjectName    = "Demo project"
	DemoBudget         = 2000000
	DemoTimelineMonths = 12

	// Progress and budget usage are placeholders until execution tracking
	// exists.
	demoProgress   = 0.42
	demoBudgetUsed = 0.31

	weeksPerMonth = 4
)

// Task is a milestone bar on the project timeline, in weeks.
type Task struct {
	Name          string `json:"name"`
	StartWeek     int    `json:"startWeek"`
	DurationWeeks int    `json:"durationWeeks"`
}

var baseTasks = []Task{
	{Name: "Design", StartWeek: 0, DurationWeeks: 4},
	{Name: "Permits", StartWeek: 2, DurationWeeks: 6},
	{Name: "Groundwork", StartWeek: 6, DurationWeeks: 6},
	{Name: "Structure", StartWeek: 12, DurationWeeks: 10},
	{Name: "MEP", StartWeek: 18, DurationWeeks: 8},
	{Name: "Finishes", StartWeek: 24, DurationWeeks: 8},
	{Name: "Handover", StartWeek: 32, DurationWeeks: 4},
}

// Summary is the dashboard payload.
type Summary struct {
	Demo           bool                      `json:"demo"`
	ProjectName    string                    `json:"projectName"`
	Budget         float64                   `json:"budget"`
	TimelineMonths float64                   `json:"timelineMonths"`
	TotalWeeks     int                       `json:"totalWeeks"`
	Progress       float64                   `json:"progress"`
	BudgetUsed     float64                   `json:"budgetUsed"`
	Tasks          []Task                    `json:"tasks"`
	NextMilestone  Task                      `json:"nextMilestone"`
	Estimate       *matching.ProjectEstimate `json:"estimate,omitempty"`
}

// Build summarizes project. A nil project produces the demo dashboard.
func Build(project *entities.ProjectDescriptor) Summary {
	s := Summary{
		Demo:           project == nil,
		ProjectName:    DemoProjectName,
		Budget:         DemoBudget,
		TimelineMonths: DemoTimelineMonths,
		Progress:       demoProgress,
		BudgetUsed:     demoBudgetUsed,
	}
	if project != nil {
		s.ProjectName = project.Name
		s.Budget = project.Budget
		s.TimelineMonths = project.TimelineMonths
		est := matching.Estimate(project)
		s.Estimate = &est
	}

	s.TotalWeeks = int(s.TimelineMonths * weeksPerMonth)
	s.Tasks = Tasks(s.TotalWeeks)
	s.NextMilestone = NextMilestone(s.Tasks, s.TotalWeeks, s.Progress)
	return s
}

// Tasks returns the milestone bars clipped to fit totalWeeks.
func Tasks(totalWeeks int) []Task {
	out := make([]Task, 0, len(baseTasks))
	for _, t := range baseTasks {
		t.StartWeek = min(t.StartWeek, max(0, totalWeeks-1))
		t.DurationWeeks = min(t.DurationWeeks, max(1, totalWeeks-t.StartWeek))
		out = append(out, t)
	}
	return out
}

// NextMilestone is the first task still running at the current progress, or
// the first task when every task is behind.
func NextMilestone(tasks []Task, totalWeeks int, progress float64) Task {
	if len(tasks) == 0 {
		return Task{}
	}
	at := float64(totalWeeks) * progress
	for _, t := range tasks {
		if float64(t.StartWeek+t.DurationWeeks) > at {
			return t
		}
	}
	return tasks[0]
}
