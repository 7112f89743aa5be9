package classifier

import (
	"EcoSortAI/pkg/preprocess"
)

// IClassifier wraps the pretrained waste model. Implementations return a
// probability vector over the fixed label set for one preprocessed image.
// The production implementation is the ONNX session in onnx.go; tests swap
// in stubs with canned vectors.
type IClassifier interface {
	Predict(t *preprocess.Tensor) ([]float32, error)
	Labels() []string
	ModelName() string
	Close() error
}

// modelLabels is the output-layer order of the pretrained model. Index i of
// every probability vector corresponds to modelLabels[i].
var modelLabels = []string{
	"battery", "biological", "brown-glass", "cardboard", "clothes",
	"green-glass", "metal", "paper", "plastic", "shoes", "trash", "white-glass",
}

// ModelLabels returns a copy of the fixed label set in model output order.
func ModelLabels() []string {
	out := make([]string, len(modelLabels))
	copy(out, modelLabels)
	return out
}
