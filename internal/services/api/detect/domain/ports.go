package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Detect(ctx context.Context, in DetectInput) (DetectionOut, error)
	DetectBatch(ctx context.Context, in BatchInput) (BatchOut, error)
}
