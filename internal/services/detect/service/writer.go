package service

import (
	"context"

	"polyglot/internal/core/cues"
	"polyglot/internal/core/langdetect"
	dom "polyglot/internal/services/detect/domain"
	labelsdom "polyglot/internal/services/labels/domain"
)

// WriterConfig controls detector stamping
type WriterConfig struct {
	Version int // detector_version to stamp into labels
}

// WriterService implements domain.WriterPort
type WriterService struct {
	cfg WriterConfig
	det *langdetect.Detector
	lw  labelsdom.WriterPort
}

// NewWriter constructs the detect writer service
func NewWriter(lw labelsdom.WriterPort, cfg WriterConfig) *WriterService {
	pack, err := cues.Load()
	if err != nil {
		panic(err)
	}
	return &WriterService{
		cfg: cfg,
		det: langdetect.New(pack, cfg.Version),
		lw:  lw,
	}
}

// Write implements domain.WriterPort
func (s *WriterService) Write(ctx context.Context, xs []dom.WriteInput) (int, error) {
	out := make([]labelsdom.LabelWrite, 0, len(xs))
	for _, p := range xs {
		if p.PostID == "" || p.TextNorm == "" {
			continue
		}
		res := s.det.Detect(p.TextNorm)
		out = append(out, labelFor(p.PostID, p.CreatedAt.UTC(), p.Author, res))
	}
	if len(out) == 0 {
		return 0, nil
	}
	if err := s.lw.WriteBatch(ctx, out); err != nil {
		return 0, err
	}
	return len(out), nil
}

// WriteOne implements domain.WriterPort
func (s *WriterService) WriteOne(ctx context.Context, x dom.WriteInput) error {
	_, err := s.Write(ctx, []dom.WriteInput{x})
	return err
}
