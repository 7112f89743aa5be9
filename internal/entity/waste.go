package entity

import (
	"time"

	"EcoSortAI/internal/knowledge"
)

// WastePrediction is the transient outcome of one inference call. It lives
// for a single interaction and is superseded by the next prediction.
type WastePrediction struct {
	Label         string    `json:"label"`
	Confidence    float64   `json:"confidence"`
	Probabilities []float32 `json:"probabilities"`
}

// WasteReport composes a prediction with its knowledge-base record for
// rendering and PDF export. Read-only; never persisted except as the
// rendered PDF byte stream.
type WasteReport struct {
	Prediction         WastePrediction     `json:"prediction"`
	Fact               knowledge.WasteFact `json:"fact"`
	RecyclabilityScore int                 `json:"recyclability_score"`
	FactsAvailable     bool                `json:"facts_available"`
	ModelName          string              `json:"model_name"`
	GeneratedAt        time.Time           `json:"generated_at"`
}
