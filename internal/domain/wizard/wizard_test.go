package wizard

import (
	"errors"
	"testing"

	"rawasi_matching/internal/domain/entities"
)

func TestWizard_NextRequiresName(t *testing.T) {
	w := New()
	if _, err := w.Next(); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}

	w.Draft.Name = "   "
	if _, err := w.Next(); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired for blank name, got %v", err)
	}

	w.Draft.Name = "Villa"
	next, err := w.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Step != 1 {
		t.Fatalf("expected step 1, got %d", next.Step)
	}
	if w.Step != 0 {
		t.Fatalf("original wizard should not change")
	}
}

func TestWizard_StepsClamp(t *testing.T) {
	w := New()
	w.Draft.Name = "Villa"
	for i := 0; i < 10; i++ {
		var err error
		w, err = w.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if w.Step != LastStep {
		t.Fatalf("expected %d, got %d", LastStep, w.Step)
	}
	for i := 0; i < 10; i++ {
		w = w.Prev()
	}
	if w.Step != FirstStep {
		t.Fatalf("expected %d, got %d", FirstStep, w.Step)
	}
}

func TestWizard_Submit(t *testing.T) {
	w := New()
	w.Draft.Name = "Villa"
	w = w.ToggleTech("BIM")

	if _, err := w.Submit(); !errors.Is(err, ErrNotOnLastStep) {
		t.Fatalf("expected ErrNotOnLastStep, got %v", err)
	}

	w.Step = LastStep
	p, err := w.Submit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Villa" || len(p.TechNeeds) != 1 || p.TechNeeds[0] != "BIM" {
		t.Fatalf("unexpected project: %+v", p)
	}

	w.Draft.TechNeeds[0] = "Robotics"
	if p.TechNeeds[0] != "BIM" {
		t.Fatalf("submitted project shares tech slice with draft")
	}
}

func TestWizard_ToggleTech(t *testing.T) {
	w := New().ToggleTech("BIM").ToggleTech("Robotics").ToggleTech("BIM")
	if len(w.Draft.TechNeeds) != 1 || w.Draft.TechNeeds[0] != "Robotics" {
		t.Fatalf("unexpected tech needs: %v", w.Draft.TechNeeds)
	}
}

func TestValidate(t *testing.T) {
	valid := DefaultDraft()
	valid.Name = "Villa"

	cases := []struct {
		name   string
		mutate func(d *entities.ProjectDescriptor)
		want   error
	}{
		{name: "valid", mutate: func(d *entities.ProjectDescriptor) {}},
		{name: "missing name", mutate: func(d *entities.ProjectDescriptor) { d.Name = "" }, want: ErrNameRequired},
		{name: "bad type", mutate: func(d *entities.ProjectDescriptor) { d.Type = "Castle" }, want: ErrUnknownType},
		{name: "bad complexity", mutate: func(d *entities.ProjectDescriptor) { d.Complexity = "extreme" }, want: ErrUnknownComplex},
		{name: "negative size", mutate: func(d *entities.ProjectDescriptor) { d.SizeSqm = -1 }, want: ErrInvalidDraft},
		{name: "negative budget", mutate: func(d *entities.ProjectDescriptor) { d.Budget = -5 }, want: ErrInvalidDraft},
		{name: "mixed use", mutate: func(d *entities.ProjectDescriptor) { d.Type = entities.ProjectTypeMixedUse }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := valid.Clone()
			tc.mutate(&d)
			err := Validate(d)
			if tc.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
