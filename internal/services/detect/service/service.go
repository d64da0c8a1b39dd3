// Package service implements the detect service
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"polyglot/internal/core/cues"
	"polyglot/internal/core/langdetect"
	"polyglot/internal/modkit/repokit"
	"polyglot/internal/platform/logger"
	ptime "polyglot/internal/platform/time"
	"polyglot/internal/services/detect/domain"
	"polyglot/internal/services/detect/repo"
	labelsdom "polyglot/internal/services/labels/domain"
	postsdom "polyglot/internal/services/posts/domain"
)

// Config for the detect service
type Config struct {
	Version       int
	Workers       int
	PageSize      int
	MaxRangeHours int // 0 = unlimited
	DryRun        bool
	SkipSpam      bool
}

// Service implements domain.RunnerPort
type Service struct {
	Posts  postsdom.ReaderPort
	Labels labelsdom.WriterPort
	Det    *langdetect.Detector
	DB     repokit.TxRunner // nil = no run bookkeeping
	Runs   repokit.Binder[repo.Storage]
	Cfg    Config
}

// New constructs a new detect service
func New(
	posts postsdom.ReaderPort,
	labels labelsdom.WriterPort,
	pack *cues.Pack,
	db repokit.TxRunner,
	cfg Config,
) *Service {
	w := cfg.Workers
	if w <= 0 {
		w = 1
	}
	ps := cfg.PageSize
	if ps <= 0 {
		ps = 5000
	}
	if db != nil {
		// run bookkeeping is best effort; don't make it wait on a WAL flush
		db = repokit.WithBeginHooks(db, repokit.ExecHook("SET LOCAL synchronous_commit TO off"))
	}
	return &Service{
		Posts:  posts,
		Labels: labels,
		Det:    langdetect.New(pack, cfg.Version),
		DB:     db,
		Runs:   repo.NewPG(),
		Cfg: Config{
			Version:       cfg.Version,
			Workers:       w,
			PageSize:      ps,
			MaxRangeHours: cfg.MaxRangeHours,
			DryRun:        cfg.DryRun,
			SkipSpam:      cfg.SkipSpam,
		},
	}
}

// RunRange labels posts created within [start, end), paging by keyset and
// fanning detection out over a bounded worker pool
func (s *Service) RunRange(ctx context.Context, start, end time.Time) (domain.RunReport, error) {
	start = start.Truncate(time.Hour).UTC()
	end = end.Truncate(time.Hour).UTC()

	report := domain.RunReport{
		Version:   s.Cfg.Version,
		Since:     start,
		Until:     end,
		DryRun:    s.Cfg.DryRun,
		StartedAt: ptime.UTCNow(),
	}

	if end.Before(start) {
		return report, errors.New("end before start")
	}
	if s.Cfg.MaxRangeHours > 0 && int(end.Sub(start).Hours()) > s.Cfg.MaxRangeHours {
		return report, errors.New("range exceeds MaxRangeHours")
	}

	after := postsdom.AfterKey{}
	for {
		rows, next, err := s.Posts.List(ctx, postsdom.ListInput{
			Since: start, Until: end,
			After: after, Limit: s.Cfg.PageSize,
			SkipSpam: s.Cfg.SkipSpam,
		})
		if err != nil {
			return report, err
		}
		if len(rows) == 0 {
			return report, s.finish(ctx, &report)
		}
		report.Pages++
		report.Posts += len(rows)

		out := make([]labelsdom.LabelWrite, len(rows))
		used := make([]bool, len(rows))

		sem := make(chan struct{}, s.Cfg.Workers)
		wg := sync.WaitGroup{}

		for i := range rows {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer func() { <-sem; wg.Done() }()
				p := rows[i]
				if p.TextNorm == "" {
					return
				}
				res := s.Det.Detect(p.TextNorm)
				out[i] = labelFor(p.ID, p.CreatedAt, p.Author, res)
				used[i] = true
			}(i)
		}
		wg.Wait()

		flat := make([]labelsdom.LabelWrite, 0, len(rows))
		for i := range out {
			if used[i] {
				flat = append(flat, out[i])
			} else {
				report.Skipped++
			}
		}

		if !s.Cfg.DryRun && len(flat) > 0 {
			if err := s.Labels.WriteBatch(ctx, flat); err != nil {
				return report, err
			}
		}
		report.Labeled += len(flat)

		after = next
	}
}

// finish stamps the report and records the run unless this was a dry run
func (s *Service) finish(ctx context.Context, r *domain.RunReport) error {
	r.FinishedAt = ptime.UTCNow()
	logger.C(ctx).Info().
		Int("pages", r.Pages).
		Int("posts", r.Posts).
		Int("labeled", r.Labeled).
		Int("skipped", r.Skipped).
		Bool("dry_run", r.DryRun).
		Msg("detect run complete")

	if r.DryRun || s.DB == nil {
		return nil
	}
	return s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Runs.Bind(q).InsertRun(ctx, *r)
	})
}

// labelFor maps one detection result onto a persistable label
func labelFor(postID string, createdAt time.Time, author string, res langdetect.Result) labelsdom.LabelWrite {
	return labelsdom.LabelWrite{
		PostID:          postID,
		CreatedAt:       createdAt,
		Author:          author,
		Language:        string(res.Language),
		Primary:         string(res.Primary),
		Secondary:       string(res.Secondary),
		IsMixed:         res.IsMixed,
		Confidence:      res.Confidence,
		Scripts:         res.Scripts,
		DetectorVersion: res.DetectorVersion,
	}
}
