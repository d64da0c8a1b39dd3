package domain

import (
	"context"
	"time"

	labelsdom "polyglot/internal/services/labels/domain"
	postsdom "polyglot/internal/services/posts/domain"
)

// RunnerPort is the external port for the detect job
type RunnerPort interface {
	RunRange(ctx context.Context, start, end time.Time) (RunReport, error)
}

// Ports are dependencies injected into the detect module
type Ports struct {
	Posts  postsdom.ReaderPort  // required
	Labels labelsdom.WriterPort // required
}

// WriterPort accepts posts and writes labels
type WriterPort interface {
	// Write detects a batch of normalized posts and persists labels.
	// Returns the number of labels written
	Write(ctx context.Context, xs []WriteInput) (int, error)

	// WriteOne convenience wrapper
	WriteOne(ctx context.Context, x WriteInput) error
}
