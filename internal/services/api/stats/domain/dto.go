// Package domain holds DTOs for stats http and service contracts
package domain

// Query window and filters kept small and explicit
// Dates are ISO8601 days; End is inclusive

// TimeRange defines a start and end day for queries
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2026-03-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2026-03-31"`
}

// LanguagesInput buckets labeled posts by language
type LanguagesInput struct {
	Range TimeRange `json:"range"`
	// optional filters
	Language string `json:"language,omitempty" validate:"omitempty,alpha" example:"japanese"`
	Mixed    *bool  `json:"mixed,omitempty" example:"false"`
	Version  *int   `json:"version,omitempty" validate:"omitempty,min=1" example:"1"`
}

// LanguagesRow represents a row in the Languages output
type LanguagesRow struct {
	Language        string  `json:"language" example:"japanese"`
	Posts           int64   `json:"posts" example:"420"`
	AvgConfidence   float64 `json:"avg_confidence" example:"0.91"`
	DetectorVersion int     `json:"detector_version" example:"1"`
}

// SeriesInput buckets observations by day and language
type SeriesInput struct {
	Range    TimeRange `json:"range"`
	Language string    `json:"language,omitempty" validate:"omitempty,alpha" example:"english"`
	Author   string    `json:"author,omitempty" validate:"omitempty,min=1,max=100" example:"tanaka_jp"`
	Version  *int      `json:"version,omitempty" validate:"omitempty,min=1" example:"1"`
}

// SeriesRow represents a row in the Series output
type SeriesRow struct {
	Day      string `json:"day" example:"2026-03-01"`
	Language string `json:"language" example:"english"`
	Posts    int64  `json:"posts" example:"42"`
}
