// Package domain defines the core types and interfaces for the detect service
package domain

import "time"

// Input controls the scan window and batching
type Input struct {
	Since    time.Time
	Until    time.Time
	PageSize int
	Workers  int
	Version  int
	DryRun   bool
}

// WriteInput is the minimal per-post payload detect needs to compute & persist labels
type WriteInput struct {
	PostID    string    // required
	TextNorm  string    // required (already normalized upstream)
	CreatedAt time.Time // required
	Author    string
}

// RunReport summarizes one RunRange execution
type RunReport struct {
	Version    int
	Since      time.Time
	Until      time.Time
	Pages      int
	Posts      int
	Labeled    int
	Skipped    int // empty text
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
}
