// Package wizard implements the step-by-step capture of a project
// descriptor. Validation of owner input lives here; the matching engine
// trusts what it is given.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"rawasi_matching/internal/domain/entities"
)

const (
	FirstStep = 0
	LastStep  = 4
)

var (
	ErrNameRequired   = errors.New("please name your project")
	ErrNotOnLastStep  = errors.New("wizard has not reached its final step")
	ErrInvalidDraft   = errors.New("invalid project draft")
	ErrUnknownType    = errors.New("unknown project type")
	ErrUnknownComplex = errors.New("unknown complexity")
)

// Cities are the locations offered by the wizard. Other values are accepted.
var Cities = []string{"Riyadh", "Jeddah", "Dammam", "Mecca", "Medina"}

// DefaultDraft is the descriptor a new wizard starts from.
func DefaultDraft() entities.ProjectDescriptor {
	return entities.ProjectDescriptor{
		Type:           entities.ProjectTypeResidential,
		SizeSqm:        1500,
		Location:       "Riyadh",
		Budget:         2000000,
		TimelineMonths: 12,
		Complexity:     entities.ComplexityMedium,
		TechNeeds:      []string{},
	}
}

// Wizard is a draft descriptor plus the current step.
type Wizard struct {
	Step  int
	Draft entities.ProjectDescriptor
}

// New starts a wizard on the first step with the default draft.
func New() Wizard {
	return Wizard{Step: FirstStep, Draft: DefaultDraft()}
}

// Next advances one step. The first step cannot be left without a name.
func (w Wizard) Next() (Wizard, error) {
	if w.Step == FirstStep && strings.TrimSpace(w.Draft.Name) == "" {
		return w, ErrNameRequired
	}
	w.Step = clampStep(w.Step + 1)
	return w, nil
}

// Prev goes back one step.
func (w Wizard) Prev() Wizard {
	w.Step = clampStep(w.Step - 1)
	return w
}

// ToggleTech adds tag to the draft's tech needs or removes it.
func (w Wizard) ToggleTech(tag string) Wizard {
	needs := make([]string, 0, len(w.Draft.TechNeeds)+1)
	found := false
	for _, t := range w.Draft.TechNeeds {
		if t == tag {
			found = true
			continue
		}
		needs = append(needs, t)
	}
	if !found {
		needs = append(needs, tag)
	}
	w.Draft.TechNeeds = needs
	return w
}

// Submit finalizes the draft. It is only allowed from the last step and
// returns a copy that no longer shares memory with the draft.
func (w Wizard) Submit() (entities.ProjectDescriptor, error) {
	if w.Step != LastStep {
		return entities.ProjectDescriptor{}, ErrNotOnLastStep
	}
	if err := Validate(w.Draft); err != nil {
		return entities.ProjectDescriptor{}, err
	}
	return w.Draft.Clone(), nil
}

// Validate checks a draft before it is accepted.
func Validate(d entities.ProjectDescriptor) error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	switch d.Type {
	case entities.ProjectTypeResidential, entities.ProjectTypeCommercial, entities.ProjectTypeIndustrial, entities.ProjectTypeMixedUse:
	default:
		return fmt.Errorf("%w: %w %q", ErrInvalidDraft, ErrUnknownType, d.Type)
	}
	switch d.Complexity {
	case entities.ComplexityLow, entities.ComplexityMedium, entities.ComplexityHigh:
	default:
		return fmt.Errorf("%w: %w %q", ErrInvalidDraft, ErrUnknownComplex, d.Complexity)
	}
	if d.SizeSqm < 0 || d.Budget < 0 || d.TimelineMonths < 0 {
		return fmt.Errorf("%w: negative size, budget or timeline", ErrInvalidDraft)
	}
	return nil
}

func clampStep(s int) int {
	if s < FirstStep {
		return FirstStep
	}
	if s > LastStep {
		return LastStep
	}
	return s
}
