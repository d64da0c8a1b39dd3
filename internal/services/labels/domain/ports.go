package domain

import "context"

// WriterPort writes labels
type WriterPort interface {
	WriteBatch(ctx context.Context, xs []LabelWrite) error
}

// QueryPort queries labels, samples, and aggregations
type QueryPort interface {
	ListSamples(
		ctx context.Context,
		w Window,
		f Filters,
		after AfterKey,
		limit int,
	) (rows []Sample, next AfterKey, err error)
	AggByLanguage(ctx context.Context, w Window, f Filters) ([]AggByLanguageRow, error)

	// SeriesByDay reads the ClickHouse observation mirror
	SeriesByDay(ctx context.Context, w Window, f Filters) ([]SeriesRow, error)
}
