package classifier

import (
	"fmt"
	"math"
)

// Result holds the interpreted outcome of one inference call.
type Result struct {
	Index         int       `json:"index"`
	Label         string    `json:"label"`
	Confidence    float64   `json:"confidence"`
	Probabilities []float32 `json:"probabilities"`
}

// Interpret selects the arg-max entry of a probability vector. Ties resolve
// to the lowest index. Confidence is the winning probability as a percentage.
func Interpret(probs []float32, labels []string) Result {
	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}

	label := ""
	if best < len(labels) {
		label = labels[best]
	}

	out := make([]float32, len(probs))
	copy(out, probs)

	return Result{
		Index:         best,
		Label:         label,
		Confidence:    float64(probs[best]) * 100.0,
		Probabilities: out,
	}
}

// ValidateDistribution checks the model output contract: every entry
// non-negative and the vector summing to 1 within 1e-3.
func ValidateDistribution(probs []float32) error {
	if len(probs) == 0 {
		return fmt.Errorf("classifier: empty probability vector")
	}

	var sum float64
	for i, p := range probs {
		if p < 0 {
			return fmt.Errorf("classifier: negative probability %f at index %d", p, i)
		}
		sum += float64(p)
	}

	if math.Abs(sum-1.0) > 1e-3 {
		return fmt.Errorf("classifier: probabilities sum to %f, expected 1", sum)
	}
	return nil
}
