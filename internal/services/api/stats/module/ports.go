package module

import (
	"context"

	"polyglot/internal/services/api/stats/domain"
	statssvc "polyglot/internal/services/api/stats/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptStatsPort struct{ svc statssvc.Service }

// Languages returns labeled post counts by language
func (a adaptStatsPort) Languages(ctx context.Context, in domain.LanguagesInput) ([]domain.LanguagesRow, error) {
	return a.svc.Languages(ctx, in)
}

// Series returns observation counts by day and language
func (a adaptStatsPort) Series(ctx context.Context, in domain.SeriesInput) ([]domain.SeriesRow, error) {
	return a.svc.Series(ctx, in)
}
