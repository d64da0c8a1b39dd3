package domain

import "context"

// ReaderPort defines the read interface for posts
type ReaderPort interface {
	// List returns up to Limit rows ordered by (created_at, post_id), applying filters
	List(ctx context.Context, in ListInput) (rows []Post, next AfterKey, err error)
}

// WriterPort accepts extracted posts for persistence
type WriterPort interface {
	// InsertBatch persists posts idempotently and returns the count attempted
	InsertBatch(ctx context.Context, xs []Post) (int, error)
}
