// Package service contains stats workflows
package service

import (
	"context"
	"time"

	perr "polyglot/internal/platform/errors"
	"polyglot/internal/services/api/stats/domain"
	labelsdom "polyglot/internal/services/labels/domain"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service over the labels query port
type Svc struct {
	labels labelsdom.QueryPort
}

// New constructs a stats service
func New(labels labelsdom.QueryPort) *Svc {
	if labels == nil {
		panic("stats.Service requires a non nil labels QueryPort")
	}
	return &Svc{labels: labels}
}

// Languages aggregates labeled posts per language in the window
func (s *Svc) Languages(ctx context.Context, in domain.LanguagesInput) ([]domain.LanguagesRow, error) {
	w, err := window(in.Range)
	if err != nil {
		return nil, err
	}
	rows, err := s.labels.AggByLanguage(ctx, w, labelsdom.Filters{
		Language: in.Language,
		Mixed:    in.Mixed,
		Version:  in.Version,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.LanguagesRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.LanguagesRow{
			Language:        r.Language,
			Posts:           r.Posts,
			AvgConfidence:   r.AvgConfidence,
			DetectorVersion: r.DetectorVersion,
		})
	}
	return out, nil
}

// Series buckets observations by day and language
func (s *Svc) Series(ctx context.Context, in domain.SeriesInput) ([]domain.SeriesRow, error) {
	w, err := window(in.Range)
	if err != nil {
		return nil, err
	}
	rows, err := s.labels.SeriesByDay(ctx, w, labelsdom.Filters{
		Language: in.Language,
		Author:   in.Author,
		Version:  in.Version,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.SeriesRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.SeriesRow{
			Day:      r.Day.UTC().Format("2006-01-02"),
			Language: r.Language,
			Posts:    r.Posts,
		})
	}
	return out, nil
}

// window parses the validated day range; End is inclusive
func window(tr domain.TimeRange) (labelsdom.Window, error) {
	since, err := time.Parse("2006-01-02", tr.Start)
	if err != nil {
		return labelsdom.Window{}, perr.InvalidArgf("bad start day %q", tr.Start)
	}
	end, err := time.Parse("2006-01-02", tr.End)
	if err != nil {
		return labelsdom.Window{}, perr.InvalidArgf("bad end day %q", tr.End)
	}
	until := end.AddDate(0, 0, 1)
	if !until.After(since) {
		return labelsdom.Window{}, perr.InvalidArgf("end before start")
	}
	return labelsdom.Window{Since: since.UTC(), Until: until.UTC()}, nil
}
