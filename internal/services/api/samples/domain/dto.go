// Package domain holds DTOs for samples http and service contracts
package domain

// SamplesInput is the input for fetching labeled samples
type SamplesInput struct {
	Start         string  `json:"start" validate:"required,datetime=2006-01-02" example:"2026-03-01"`
	End           string  `json:"end" validate:"required,datetime=2006-01-02" example:"2026-03-31"`
	Author        string  `json:"author,omitempty" validate:"omitempty,min=1,max=100" example:"tanaka_jp"`
	Language      string  `json:"language,omitempty" validate:"omitempty,alpha" example:"mixed"`
	Mixed         *bool   `json:"mixed,omitempty" example:"true"`
	MinConfidence float64 `json:"min_confidence,omitempty" validate:"omitempty,min=0,max=1" example:"0.5"`
	Limit         int     `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`

	// Keyset cursor from the previous page
	AfterCreatedAt string `json:"after_created_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2026-03-02T10:00:00Z"`
	AfterPostID    string `json:"after_post_id,omitempty" validate:"omitempty,uuid" example:"6d1f6b3e-52f3-5e0e-9c9b-6a2be0a4f7a1"`
}

// Sample represents a labeled post sample
type Sample struct {
	PostID          string  `json:"post_id"`
	Author          string  `json:"author"`
	Text            string  `json:"text"`
	Language        string  `json:"language"`
	Primary         string  `json:"primary"`
	Secondary       *string `json:"secondary,omitempty"`
	IsMixed         bool    `json:"is_mixed"`
	Confidence      float64 `json:"confidence"`
	DetectorVersion int     `json:"detector_version"`
	CreatedAt       string  `json:"created_at"`
}

// SamplesOut carries one page plus the next cursor
type SamplesOut struct {
	Samples       []Sample `json:"samples"`
	NextCreatedAt string   `json:"next_created_at,omitempty"`
	NextPostID    string   `json:"next_post_id,omitempty"`
}
