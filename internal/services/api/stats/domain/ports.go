package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Languages(ctx context.Context, in LanguagesInput) ([]LanguagesRow, error)
	Series(ctx context.Context, in SeriesInput) ([]SeriesRow, error)
}
