// Package domain defines core types and interfaces for posts
package domain

import "time"

// AfterKey supports stable keyset pagination over (created_at, post_id)
type AfterKey struct {
	CreatedAt time.Time
	ID        string // uuid
}

// ListInput defines the input parameters for listing posts
type ListInput struct {
	Since time.Time // inclusive
	Until time.Time // exclusive
	After AfterKey  // zero value = from start
	Limit int       // hard-capped in service

	// Optional filters (all ANDed)
	Author     string // handle, e.g. "tanaka_jp"
	SourceFile string
	Lang       string // language stamped at ingest time
	SkipSpam   bool
}

// Post is the stored post view shared across consumers
type Post struct {
	ID         string // uuid
	CreatedAt  time.Time
	Author     string
	AuthorName string
	SourceFile string
	TextRaw    string
	TextNorm   string
	Lang       *string // nil until labeled
	Likes      int64
	Shares     int64
	Replies    int64
	Views      int64
	IsSpam     bool
}
