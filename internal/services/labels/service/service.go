// Package service provides the labels service implementation
package service

import (
	"context"

	"polyglot/internal/modkit/repokit"
	perr "polyglot/internal/platform/errors"
	"polyglot/internal/platform/logger"
	dom "polyglot/internal/services/labels/domain"
	"polyglot/internal/services/labels/repo"
)

// Config for the labels service
type Config struct {
	HardLimit int
}

// Service implements domain.WriterPort and domain.QueryPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Obs    *repo.CH // nil when ClickHouse is disabled
	Cfg    Config
}

// New constructs a new labels service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], obs *repo.CH, cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 100
	}
	return &Service{DB: db, Binder: b, Obs: obs, Cfg: cfg}
}

// WriteBatch implements domain.WriterPort.
// Postgres is the source of truth; the ClickHouse mirror is best-effort
func (s *Service) WriteBatch(ctx context.Context, xs []dom.LabelWrite) error {
	if len(xs) == 0 {
		return nil
	}
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).WriteBatch(ctx, xs)
	})
	if err != nil {
		return err
	}

	if s.Obs != nil {
		if err := s.Obs.WriteObservations(ctx, xs); err != nil {
			logger.C(ctx).Warn().Err(err).Int("rows", len(xs)).Msg("observation mirror write failed")
		}
	}
	return nil
}

// ListSamples implements domain.QueryPort
func (s *Service) ListSamples(
	ctx context.Context,
	w dom.Window,
	f dom.Filters,
	after dom.AfterKey,
	limit int,
) ([]dom.Sample, dom.AfterKey, error) {
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}

	var rows []dom.Sample
	var next dom.AfterKey
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rows, next, err = s.Binder.Bind(q).ListSamples(ctx, w, f, after, limit)
		return err
	})
	if err != nil {
		return nil, dom.AfterKey{}, err
	}
	return rows, next, nil
}

// AggByLanguage implements domain.QueryPort
func (s *Service) AggByLanguage(ctx context.Context, w dom.Window, f dom.Filters) ([]dom.AggByLanguageRow, error) {
	var out []dom.AggByLanguageRow
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).AggByLanguage(ctx, w, f)
		return err
	})
	return out, err
}

// SeriesByDay implements domain.QueryPort
func (s *Service) SeriesByDay(ctx context.Context, w dom.Window, f dom.Filters) ([]dom.SeriesRow, error) {
	if s.Obs == nil {
		return nil, perr.Unavailablef("observation store disabled")
	}
	return s.Obs.SeriesByDay(ctx, w, f)
}
