// Package service contains samples workflows
package service

import (
	"context"
	"time"

	perr "polyglot/internal/platform/errors"
	"polyglot/internal/services/api/samples/domain"
	labelsdom "polyglot/internal/services/labels/domain"
)

// Service defines the service contract for samples
type Service interface{ domain.ServicePort }

// Svc implements the Service interface over the labels query port
type Svc struct {
	labels labelsdom.QueryPort
}

// New creates a new samples service
func New(labels labelsdom.QueryPort) *Svc {
	if labels == nil {
		panic("samples.Service requires a non nil labels QueryPort")
	}
	return &Svc{labels: labels}
}

// Recent retrieves one keyset page of labeled samples
func (s *Svc) Recent(ctx context.Context, in domain.SamplesInput) (domain.SamplesOut, error) {
	since, err := time.Parse("2006-01-02", in.Start)
	if err != nil {
		return domain.SamplesOut{}, perr.InvalidArgf("bad start day %q", in.Start)
	}
	end, err := time.Parse("2006-01-02", in.End)
	if err != nil {
		return domain.SamplesOut{}, perr.InvalidArgf("bad end day %q", in.End)
	}
	w := labelsdom.Window{Since: since.UTC(), Until: end.AddDate(0, 0, 1).UTC()}

	var after labelsdom.AfterKey
	if in.AfterPostID != "" {
		ts, err := time.Parse(time.RFC3339, in.AfterCreatedAt)
		if err != nil {
			return domain.SamplesOut{}, perr.InvalidArgf("cursor requires after_created_at")
		}
		after = labelsdom.AfterKey{CreatedAt: ts, PostID: in.AfterPostID}
	}

	rows, next, err := s.labels.ListSamples(ctx, w, labelsdom.Filters{
		Author:        in.Author,
		Language:      in.Language,
		Mixed:         in.Mixed,
		MinConfidence: in.MinConfidence,
	}, after, in.Limit)
	if err != nil {
		return domain.SamplesOut{}, err
	}

	out := domain.SamplesOut{Samples: make([]domain.Sample, 0, len(rows))}
	for _, r := range rows {
		out.Samples = append(out.Samples, domain.Sample{
			PostID:          r.PostID,
			Author:          r.Author,
			Text:            r.TextNorm,
			Language:        r.Language,
			Primary:         r.Primary,
			Secondary:       r.Secondary,
			IsMixed:         r.IsMixed,
			Confidence:      r.Confidence,
			DetectorVersion: r.DetectorVersion,
			CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	if len(rows) > 0 && next.PostID != "" {
		out.NextCreatedAt = next.CreatedAt.UTC().Format(time.RFC3339)
		out.NextPostID = next.PostID
	}
	return out, nil
}
