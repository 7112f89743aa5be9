package knowledge

import "math/rand"

// WasteFact is the immutable guidance record attached to a class label.
// Built once at process start from the literal table in facts.go and never
// mutated afterwards.
type WasteFact struct {
	Description               string  `json:"description"`
	Recycle                   string  `json:"recycle"`
	Hazard                    string  `json:"hazard"`
	DecompositionTime         string  `json:"decomposition_time"`
	CarbonSavingKgPerKg       float64 `json:"carbon_saving_kg_per_kg"`
	LandfillReductionM3PerTon float64 `json:"landfill_reduction_m3_per_ton"`
	Tip                       string  `json:"tip"`
}

// Labels returns the fixed class label set in model output order. Index
// position matters: entry i corresponds to the classifier's output index i.
func Labels() []string {
	out := make([]string, len(classLabels))
	copy(out, classLabels)
	return out
}

// Lookup returns the guidance record for a class label.
func Lookup(label string) (WasteFact, bool) {
	fact, ok := wasteInfo[label]
	return fact, ok
}

// Score returns the hand-assigned 0-100 recyclability rating for a label.
func Score(label string) (int, bool) {
	score, ok := recyclabilityScore[label]
	return score, ok
}

// RandomFact returns one entry from the "did you know" pool.
func RandomFact() string {
	return didYouKnow[rand.Intn(len(didYouKnow))]
}
