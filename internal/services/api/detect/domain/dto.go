// Package domain holds DTOs for detect http and service contracts
package domain

// DetectInput is one text to label
type DetectInput struct {
	Text string `json:"text" validate:"required,max=40000" example:"今日はとても楽しかった！"`
}

// BatchInput labels several texts in one call
type BatchInput struct {
	Texts []string `json:"texts" validate:"required,min=1,max=100,dive,max=40000" example:"今日は楽しかった,hello world"`
}

// ScoreOut is one candidate's blended score
type ScoreOut struct {
	Lang        string  `json:"lang" example:"japanese"`
	Score       float64 `json:"score" example:"1.05"`
	ScriptRatio float64 `json:"script_ratio" example:"1.0"`
}

// DetectionOut is the labeled outcome for one text
type DetectionOut struct {
	Language        string             `json:"language" example:"japanese"`
	Primary         string             `json:"primary" example:"japanese"`
	Secondary       string             `json:"secondary,omitempty" example:"english"`
	IsMixed         bool               `json:"is_mixed" example:"false"`
	Confidence      float64            `json:"confidence" example:"0.93"`
	Scores          []ScoreOut         `json:"scores"`
	Scripts         map[string]float64 `json:"script_breakdown"`
	DetectorVersion int                `json:"detector_version" example:"1"`
}

// BatchOut wraps the per-text outcomes in input order
type BatchOut struct {
	Results []DetectionOut `json:"results"`
}
