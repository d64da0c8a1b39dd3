// Package repo persists detect run bookkeeping
package repo

import (
	"context"

	"polyglot/internal/modkit/repokit"
	"polyglot/internal/services/detect/domain"
)

// binder implements repokit.Binder[Storage]
type binder struct{}

// NewPG returns a Postgres binder for Storage
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage records completed detect runs
type Storage interface {
	InsertRun(ctx context.Context, r domain.RunReport) error
}

type pg struct{ q repokit.Queryer }

// InsertRun implements Storage
func (s *pg) InsertRun(ctx context.Context, r domain.RunReport) error {
	const sql = `INSERT INTO detect_runs
		(detector_version, since, until, pages, posts, labeled, skipped, started_at, finished_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := s.q.Exec(ctx, sql,
		r.Version, r.Since, r.Until,
		r.Pages, r.Posts, r.Labeled, r.Skipped,
		r.StartedAt, r.FinishedAt,
	)
	return err
}
