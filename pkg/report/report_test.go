package report

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"EcoSortAI/internal/entity"
	"EcoSortAI/internal/knowledge"
)

func sampleReport(t *testing.T) *entity.WasteReport {
	t.Helper()
	fact, ok := knowledge.Lookup("battery")
	if !ok {
		t.Fatal("missing battery fact")
	}
	score, _ := knowledge.Score("battery")

	probs := make([]float32, 12)
	probs[0] = 1.0

	return &entity.WasteReport{
		Prediction: entity.WastePrediction{
			Label:         "battery",
			Confidence:    100.0,
			Probabilities: probs,
		},
		Fact:               fact,
		RecyclabilityScore: score,
		FactsAvailable:     true,
		ModelName:          "ecosortai_final_model.onnx",
		GeneratedAt:        time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
}

func sampleJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 300, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 300; x++ {
			img.Set(x, y, color.RGBA{R: 100, G: 180, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 500, 220))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// assertNoLeftoverTemps fails if any staged temp file survived the export.
func assertNoLeftoverTemps(t *testing.T, tmpDir string) {
	t.Helper()
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("read temp dir: %v", err)
	}
	for _, e := range entries {
		t.Errorf("leftover temp file after export: %s", e.Name())
	}
}

func TestWrite_ProducesPDF(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TMPDIR", tmpDir)

	var buf bytes.Buffer
	err := NewExporter().Write(&buf, sampleReport(t), sampleJPEG(t), samplePNG(t))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not start with PDF header: %q", buf.Bytes()[:8])
	}

	assertNoLeftoverTemps(t, tmpDir)
}

func TestWrite_NoImages(t *testing.T) {
	var buf bytes.Buffer
	err := NewExporter().Write(&buf, sampleReport(t), nil, nil)
	if err != nil {
		t.Fatalf("Write without images: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("expected a PDF even with no embedded images")
	}
}

func TestWrite_PlaceholdersOnLookupMiss(t *testing.T) {
	rep := sampleReport(t)
	rep.FactsAvailable = false
	rep.Fact = knowledge.WasteFact{}
	rep.RecyclabilityScore = 0

	var buf bytes.Buffer
	if err := NewExporter().Write(&buf, rep, nil, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
}

func TestWrite_CorruptChartCleansTemps(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TMPDIR", tmpDir)

	var buf bytes.Buffer
	err := NewExporter().Write(&buf, sampleReport(t), sampleJPEG(t), []byte("not a png"))
	if err == nil {
		t.Fatal("expected error when chart payload cannot be embedded")
	}

	// Cleanup must run even on the failure path.
	assertNoLeftoverTemps(t, tmpDir)
}

func TestWriteFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "report.pdf")

	err := NewExporter().WriteFile(outPath, sampleReport(t), sampleJPEG(t), samplePNG(t))
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty file at target path")
	}
}

func TestWriteFile_RemovesPartialOutputOnError(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "report.pdf")

	err := NewExporter().WriteFile(outPath, sampleReport(t), nil, []byte("not a png"))
	if err == nil {
		t.Fatal("expected error for corrupt chart payload")
	}

	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Fatal("expected partial output file to be removed on error")
	}
}
