// Package service contains detect workflows
package service

import (
	"context"

	"polyglot/internal/core/cues"
	"polyglot/internal/core/langdetect"
	"polyglot/internal/core/normalize"
	"polyglot/internal/services/api/detect/domain"
)

// Service defines the detect service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the detect service
type Svc struct {
	det  *langdetect.Detector
	norm *normalize.Normalizer
}

// New constructs a detect service around a shared detector
func New(version int) *Svc {
	pack, err := cues.Load()
	if err != nil {
		panic(err)
	}
	return &Svc{
		det:  langdetect.New(pack, version),
		norm: normalize.New(),
	}
}

// Version reports the detector version stamped on results
func (s *Svc) Version() int { return s.det.Version() }

// Detect normalizes and labels one text
func (s *Svc) Detect(_ context.Context, in domain.DetectInput) (domain.DetectionOut, error) {
	return s.one(in.Text), nil
}

// DetectBatch labels each text, preserving input order
func (s *Svc) DetectBatch(_ context.Context, in domain.BatchInput) (domain.BatchOut, error) {
	out := domain.BatchOut{Results: make([]domain.DetectionOut, 0, len(in.Texts))}
	for _, t := range in.Texts {
		out.Results = append(out.Results, s.one(t))
	}
	return out, nil
}

func (s *Svc) one(text string) domain.DetectionOut {
	res := s.det.Detect(s.norm.Normalize(text))

	scores := make([]domain.ScoreOut, 0, len(res.Scores))
	for _, sc := range res.Scores {
		scores = append(scores, domain.ScoreOut{
			Lang:        string(sc.Lang),
			Score:       sc.Score,
			ScriptRatio: sc.ScriptRatio,
		})
	}
	return domain.DetectionOut{
		Language:        string(res.Language),
		Primary:         string(res.Primary),
		Secondary:       string(res.Secondary),
		IsMixed:         res.IsMixed,
		Confidence:      res.Confidence,
		Scores:          scores,
		Scripts:         res.Scripts,
		DetectorVersion: res.DetectorVersion,
	}
}
