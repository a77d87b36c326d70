package usecase

import (
	"context"

	"rawasi_matching/internal/domain/dashboard"
	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/domain/matching"
	"rawasi_matching/internal/infrastructure/logger"
	"rawasi_matching/internal/usecase/interfaces"

	"go.uber.org/zap"
)

//go:generate mockgen -source=recommendation_usecase.go -destination=../adapter/http/handlers/mocks/recommendation_usecase_mock.go -package=mocks

// RecommendationResult is a ranked and filtered view of the catalog.
type RecommendationResult struct {
	Project         *entities.ProjectDescriptor
	Recommendations []matching.Recommendation
	Total           int
	TechOptions     []string
	Source          string
}

// CompareItem is a compared provider with the sub-scores behind its score.
type CompareItem struct {
	matching.Recommendation
	Breakdown matching.Breakdown
}

// IRecommendationUseCase exposes the read side of the engine for a session.
type IRecommendationUseCase interface {
	Recommend(ctx context.Context, sessionID string, filter matching.Filter) (RecommendationResult, error)
	Compare(ctx context.Context, sessionID string) ([]CompareItem, error)
	Estimate(ctx context.Context, sessionID string) (matching.ProjectEstimate, error)
	Dashboard(ctx context.Context, sessionID string) (dashboard.Summary, error)
}

type RecommendationUseCase struct {
	sessions interfaces.ISessionRepository
	catalog  interfaces.IProviderCatalog
	log      *zap.Logger
}

var _ IRecommendationUseCase = (*RecommendationUseCase)(nil)

func NewRecommendationUseCase(sessions interfaces.ISessionRepository, catalog interfaces.IProviderCatalog, log *zap.Logger) *RecommendationUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecommendationUseCase{sessions: sessions, catalog: catalog, log: log}
}

// Recommend ranks the whole catalog for the session project, then narrows it
// with filter. Tech options are derived from the unfiltered ranking.
func (u *RecommendationUseCase) Recommend(ctx context.Context, sessionID string, filter matching.Filter) (RecommendationResult, error) {
	s, err := loadSession(ctx, u.sessions, sessionID)
	if err != nil {
		return RecommendationResult{}, err
	}
	providers, err := u.catalog.List(ctx)
	if err != nil {
		logger.FromContext(ctx, u.log).Error("[recs][usecase] catalog list failed", zap.String("session_id", s.ID), zap.Error(err))
		return RecommendationResult{}, err
	}

	ranked := matching.Rank(providers, s.Project)
	res := RecommendationResult{
		Project:         s.Project,
		Recommendations: filter.Apply(ranked),
		Total:           len(ranked),
		TechOptions:     matching.TechOptions(ranked),
		Source:          u.catalog.Source(),
	}
	logger.FromContext(ctx, u.log).Debug("[recs][usecase] ranked",
		zap.String("session_id", s.ID),
		zap.Int("total", res.Total),
		zap.Int("shown", len(res.Recommendations)),
		zap.String("source", res.Source),
	)
	return res, nil
}

// Compare returns the selected providers in catalog order. Ids no longer in
// the catalog are skipped.
func (u *RecommendationUseCase) Compare(ctx context.Context, sessionID string) ([]CompareItem, error) {
	s, err := loadSession(ctx, u.sessions, sessionID)
	if err != nil {
		return nil, err
	}
	providers, err := u.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	size := 0.0
	if s.Project != nil {
		size = s.Project.SizeSqm
	}
	items := make([]CompareItem, 0, len(s.Compare))
	for _, p := range providers {
		if !matching.Contains(s.Compare, p.ID) {
			continue
		}
		p = p.Normalize()
		items = append(items, CompareItem{
			Recommendation: matching.Recommendation{
				Provider: p,
				Score:    matching.Score(p, s.Project),
				EstCost:  matching.ProviderCost(p, size),
			},
			Breakdown: matching.ScoreBreakdown(p, s.Project),
		})
	}
	return items, nil
}

// Estimate forecasts the submitted project, or the draft while the wizard is
// still running.
func (u *RecommendationUseCase) Estimate(ctx context.Context, sessionID string) (matching.ProjectEstimate, error) {
	s, err := loadSession(ctx, u.sessions, sessionID)
	if err != nil {
		return matching.ProjectEstimate{}, err
	}
	if s.Project != nil {
		return matching.Estimate(s.Project), nil
	}
	return matching.Estimate(&s.Draft), nil
}

func (u *RecommendationUseCase) Dashboard(ctx context.Context, sessionID string) (dashboard.Summary, error) {
	s, err := loadSession(ctx, u.sessions, sessionID)
	if err != nil {
		return dashboard.Summary{}, err
	}
	return dashboard.Build(s.Project), nil
}
