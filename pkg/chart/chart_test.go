package chart

import (
	"bytes"
	"image/png"
	"testing"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	if len(data) == 0 {
		t.Fatal("expected non-empty PNG output")
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
}

func TestConfidenceBar(t *testing.T) {
	labels := []string{
		"battery", "biological", "brown-glass", "cardboard", "clothes",
		"green-glass", "metal", "paper", "plastic", "shoes", "trash", "white-glass",
	}
	probs := make([]float32, len(labels))
	probs[8] = 0.85
	probs[3] = 0.15

	data, err := ConfidenceBar(probs, labels)
	if err != nil {
		t.Fatalf("ConfidenceBar: %v", err)
	}
	assertPNG(t, data)
}

func TestConfidenceBar_InputMismatch(t *testing.T) {
	if _, err := ConfidenceBar([]float32{0.5, 0.5}, []string{"only-one"}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
	if _, err := ConfidenceBar(nil, nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestRecyclabilityDonut(t *testing.T) {
	for _, score := range []int{10, 50, 98} {
		data, err := RecyclabilityDonut(score)
		if err != nil {
			t.Fatalf("RecyclabilityDonut(%d): %v", score, err)
		}
		assertPNG(t, data)
	}
}

func TestRecyclabilityDonut_ScoreOutOfRange(t *testing.T) {
	for _, score := range []int{-1, 101} {
		if _, err := RecyclabilityDonut(score); err == nil {
			t.Fatalf("expected error for score %d", score)
		}
	}
}
