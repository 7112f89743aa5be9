package classification

import (
	"EcoSortAI/internal/entity"
	"EcoSortAI/internal/knowledge"
)

type ClassifyRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
}

type ClassifyResponse struct {
	Data  entity.WasteReport `json:"data,omitempty"`
	Error string             `json:"error,omitempty"`
}

type LabelsResponse struct {
	Labels []string `json:"labels"`
}

type LabelInfoResponse struct {
	Label              string              `json:"label"`
	Fact               knowledge.WasteFact `json:"fact"`
	RecyclabilityScore int                 `json:"recyclability_score"`
}

type RandomFactResponse struct {
	Fact string `json:"fact"`
}
