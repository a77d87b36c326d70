package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/domain/matching"
	"rawasi_matching/internal/domain/wizard"
	"rawasi_matching/internal/infrastructure/logger"
	"rawasi_matching/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrProjectNameRequired = errors.New("project name required")
	ErrWizardIncomplete    = errors.New("wizard has not reached its final step")
	ErrInvalidProjectDraft = errors.New("invalid project draft")
	ErrInvalidProviderID   = errors.New("invalid provider id")
	ErrProviderNotFound    = errors.New("provider not found")
	ErrInvalidAction       = errors.New("invalid flow action")
	ErrInvalidTechTag      = errors.New("invalid tech tag")
)

//go:generate mockgen -source=session_usecase.go -destination=../adapter/http/handlers/mocks/session_usecase_mock.go -package=mocks

// NavigationResult is the outcome of a navigation attempt.
//
// Redirected is true when a guard sent the owner somewhere other than the
// requested stage. It is not an error.
type NavigationResult struct {
	Session    entities.Session
	Requested  entities.Stage
	Stage      entities.Stage
	Redirected bool
	Changed    bool
}

// ISessionUseCase owns the three session cells: the project (through the
// wizard), the compare selection and the current stage.
type ISessionUseCase interface {
	Start(ctx context.Context) (entities.Session, error)
	Get(ctx context.Context, id string) (entities.Session, error)
	Reset(ctx context.Context, id string) (entities.Session, error)
	UpdateDraft(ctx context.Context, id string, draft entities.ProjectDescriptor) (entities.Session, error)
	NextStep(ctx context.Context, id string) (entities.Session, error)
	PrevStep(ctx context.Context, id string) (entities.Session, error)
	ToggleTech(ctx context.Context, id, tag string) (entities.Session, error)
	Submit(ctx context.Context, id string) (entities.Session, error)
	ToggleCompare(ctx context.Context, id, providerID string) (entities.Session, error)
	PickProvider(ctx context.Context, id, providerID string) (entities.Session, error)
	Navigate(ctx context.Context, id string, stage entities.Stage) (NavigationResult, error)
	NavigateAction(ctx context.Context, id string, action matching.Action) (NavigationResult, error)
}

type SessionUseCase struct {
	repo    interfaces.ISessionRepository
	catalog interfaces.IProviderCatalog
	log     *zap.Logger
	now     func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(repo interfaces.ISessionRepository, catalog interfaces.IProviderCatalog, log *zap.Logger) *SessionUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionUseCase{repo: repo, catalog: catalog, log: log, now: func() time.Time { return time.Now().UTC() }}
}

func (u *SessionUseCase) Start(ctx context.Context) (entities.Session, error) {
	s := u.fresh(uuid.NewString())
	log := logger.FromContext(ctx, u.log)
	saved, err := u.repo.Save(ctx, s)
	if err != nil {
		log.Error("[session][usecase] start failed", zap.Error(err))
		return entities.Session{}, err
	}
	log.Info("[session][usecase] started", zap.String("session_id", saved.ID))
	return saved, nil
}

func (u *SessionUseCase) Get(ctx context.Context, id string) (entities.Session, error) {
	return loadSession(ctx, u.repo, id)
}

// Reset drops the stored session and recreates a fresh one under the same
// id. CreatedAt is kept.
func (u *SessionUseCase) Reset(ctx context.Context, id string) (entities.Session, error) {
	current, err := loadSession(ctx, u.repo, id)
	if err != nil {
		return entities.Session{}, err
	}
	log := logger.FromContext(ctx, u.log).With(zap.String("session_id", current.ID))
	if err := u.repo.Delete(ctx, current.ID); err != nil {
		log.Error("[session][usecase] reset delete failed", zap.Error(err))
		return entities.Session{}, err
	}
	s := u.fresh(current.ID)
	s.CreatedAt = current.CreatedAt
	log.Info("[session][usecase] reset")
	return u.repo.Save(ctx, s)
}

func (u *SessionUseCase) UpdateDraft(ctx context.Context, id string, draft entities.ProjectDescriptor) (entities.Session, error) {
	return u.mutate(ctx, id, func(s *entities.Session) error {
		if draft.TechNeeds == nil {
			draft.TechNeeds = []string{}
		}
		s.Draft = draft
		return nil
	})
}

func (u *SessionUseCase) NextStep(ctx context.Context, id string) (entities.Session, error) {
	return u.mutate(ctx, id, func(s *entities.Session) error {
		w, err := wizardOf(*s).Next()
		if err != nil {
			return mapWizardError(err)
		}
		s.WizardStep = w.Step
		return nil
	})
}

func (u *SessionUseCase) PrevStep(ctx context.Context, id string) (entities.Session, error) {
	return u.mutate(ctx, id, func(s *entities.Session) error {
		s.WizardStep = wizardOf(*s).Prev().Step
		return nil
	})
}

// ToggleTech adds tag to the draft's tech needs or removes it.
func (u *SessionUseCase) ToggleTech(ctx context.Context, id, tag string) (entities.Session, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return entities.Session{}, ErrInvalidTechTag
	}
	return u.mutate(ctx, id, func(s *entities.Session) error {
		s.Draft = wizardOf(*s).ToggleTech(tag).Draft
		return nil
	})
}

// Submit finalizes the draft as the session project and moves the flow to
// the recommendations stage.
func (u *SessionUseCase) Submit(ctx context.Context, id string) (entities.Session, error) {
	return u.mutate(ctx, id, func(s *entities.Session) error {
		project, err := wizardOf(*s).Submit()
		if err != nil {
			return mapWizardError(err)
		}
		s.Project = &project
		next, _ := matching.Navigate(s.Stage, entities.StageRecommendations, matching.StateOf(*s))
		s.Stage = next
		logger.FromContext(ctx, u.log).Info("[session][usecase] project submitted",
			zap.String("session_id", s.ID),
			zap.String("project", project.Name),
			zap.String("stage", string(next)),
		)
		return nil
	})
}

func (u *SessionUseCase) ToggleCompare(ctx context.Context, id, providerID string) (entities.Session, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return entities.Session{}, ErrInvalidProviderID
	}
	return u.mutate(ctx, id, func(s *entities.Session) error {
		// Removing is always allowed so stale ids can be dropped after a
		// catalog refresh.
		if !matching.Contains(s.Compare, providerID) {
			if _, err := findProvider(ctx, u.catalog, providerID); err != nil {
				return err
			}
		}
		s.Compare = matching.ToggleCompare(s.Compare, providerID)
		logger.FromContext(ctx, u.log).Debug("[session][usecase] compare toggled",
			zap.String("session_id", s.ID),
			zap.String("provider_id", providerID),
			zap.Strings("compare", s.Compare),
		)
		return nil
	})
}

func (u *SessionUseCase) PickProvider(ctx context.Context, id, providerID string) (entities.Session, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return entities.Session{}, ErrInvalidProviderID
	}
	return u.mutate(ctx, id, func(s *entities.Session) error {
		if _, err := findProvider(ctx, u.catalog, providerID); err != nil {
			return err
		}
		s.PickedProviderID = providerID
		return nil
	})
}

func (u *SessionUseCase) Navigate(ctx context.Context, id string, stage entities.Stage) (NavigationResult, error) {
	var res NavigationResult
	s, err := u.mutate(ctx, id, func(s *entities.Session) error {
		next, changed := matching.Navigate(s.Stage, stage, matching.StateOf(*s))
		res = NavigationResult{
			Requested:  stage,
			Stage:      next,
			Redirected: next != stage,
			Changed:    changed,
		}
		s.Stage = next
		return nil
	})
	if err != nil {
		return NavigationResult{}, err
	}
	res.Session = s
	if res.Redirected {
		logger.FromContext(ctx, u.log).Info("[session][usecase] navigation redirected",
			zap.String("session_id", s.ID),
			zap.String("requested", string(stage)),
			zap.String("stage", string(res.Stage)),
		)
	}
	return res, nil
}

func (u *SessionUseCase) NavigateAction(ctx context.Context, id string, action matching.Action) (NavigationResult, error) {
	target, ok := matching.TargetFor(action)
	if !ok {
		return NavigationResult{}, ErrInvalidAction
	}
	return u.Navigate(ctx, id, target)
}

// mutate loads the latest snapshot, applies change and saves it. The stored
// stage is re-resolved against the new state so it stays reachable.
func (u *SessionUseCase) mutate(ctx context.Context, id string, change func(s *entities.Session) error) (entities.Session, error) {
	s, err := loadSession(ctx, u.repo, id)
	if err != nil {
		return entities.Session{}, err
	}
	if err := change(&s); err != nil {
		return entities.Session{}, err
	}
	s.Stage = matching.ResolveTarget(s.Stage, matching.StateOf(s))
	s.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, s)
	if err != nil {
		logger.FromContext(ctx, u.log).Error("[session][usecase] save failed", zap.String("session_id", s.ID), zap.Error(err))
		return entities.Session{}, err
	}
	return saved, nil
}

func (u *SessionUseCase) fresh(id string) entities.Session {
	now := u.now()
	w := wizard.New()
	return entities.Session{
		ID:         id,
		Draft:      w.Draft,
		WizardStep: w.Step,
		Compare:    []string{},
		Stage:      entities.StageProject,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func wizardOf(s entities.Session) wizard.Wizard {
	return wizard.Wizard{Step: s.WizardStep, Draft: s.Draft}
}

func mapWizardError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrNameRequired):
		return ErrProjectNameRequired
	case errors.Is(err, wizard.ErrNotOnLastStep):
		return ErrWizardIncomplete
	case errors.Is(err, wizard.ErrInvalidDraft):
		return errors.Join(ErrInvalidProjectDraft, err)
	default:
		return err
	}
}

func loadSession(ctx context.Context, repo interfaces.ISessionRepository, id string) (entities.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Session{}, ErrInvalidSessionID
	}
	s, err := repo.Get(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func findProvider(ctx context.Context, catalog interfaces.IProviderCatalog, id string) (entities.ProviderRecord, error) {
	providers, err := catalog.List(ctx)
	if err != nil {
		return entities.ProviderRecord{}, err
	}
	for _, p := range providers {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.ProviderRecord{}, ErrProviderNotFound
}
