package report

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"EcoSortAI/internal/entity"

	"github.com/jung-kurt/gofpdf"
)

// Letter page size in points.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
)

// Fixed layout coordinates, measured from the top-left of the page.
const (
	marginX     = 40.0
	titleY      = 50.0
	metaY       = 70.0
	predictionY = 110.0
	factsY      = 128.0
	factLineGap = 16.0

	imageX, imageY, imageBox = 360.0, 230.0, 200.0
	chartX, chartY           = 40.0, 296.0
	chartBoxW, chartBoxH     = 500.0, 220.0
)

// IExporter lays a waste report out as a single-page PDF.
type IExporter interface {
	Write(w io.Writer, rep *entity.WasteReport, imageJPEG, chartPNG []byte) error
	WriteFile(path string, rep *entity.WasteReport, imageJPEG, chartPNG []byte) error
}

type exporter struct{}

func NewExporter() IExporter {
	return &exporter{}
}

// Write renders the report and streams the PDF to w. Image payloads are
// staged through temp files for embedding; every temp file is removed
// before Write returns, whether or not rendering succeeded.
func (e *exporter) Write(w io.Writer, rep *entity.WasteReport, imageJPEG, chartPNG []byte) error {
	var tmpFiles []string
	defer func() {
		for _, f := range tmpFiles {
			os.Remove(f)
		}
	}()

	pdf := gofpdf.New("P", "pt", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(marginX, titleY, "EcoSortAI - Waste Classification Report")

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginX, metaY, fmt.Sprintf("Generated: %s", rep.GeneratedAt.Format("2006-01-02 15:04:05")))
	pdf.Text(marginX, metaY+15, fmt.Sprintf("Model: %s", rep.ModelName))

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(marginX, predictionY, tr(fmt.Sprintf("Predicted Class: %s (%.2f%%)",
		strings.ToUpper(rep.Prediction.Label), rep.Prediction.Confidence)))

	pdf.SetFont("Helvetica", "", 11)
	y := factsY
	for _, line := range factLines(rep) {
		pdf.Text(marginX, y, tr(line))
		y += factLineGap
	}

	if len(imageJPEG) > 0 {
		path, err := stageTemp(imageJPEG, "ecosort-report-*.jpg")
		if err != nil {
			return fmt.Errorf("report: stage image: %w", err)
		}
		tmpFiles = append(tmpFiles, path)
		placeImage(pdf, path, imageJPEG, imageX, imageY, imageBox, imageBox)
	}

	if len(chartPNG) > 0 {
		path, err := stageTemp(chartPNG, "ecosort-chart-*.png")
		if err != nil {
			return fmt.Errorf("report: stage chart: %w", err)
		}
		tmpFiles = append(tmpFiles, path)
		placeImage(pdf, path, chartPNG, chartX, chartY, chartBoxW, chartBoxH)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report: write pdf: %w", err)
	}
	return nil
}

// WriteFile renders the report to a caller-supplied path.
func (e *exporter) WriteFile(path string, rep *entity.WasteReport, imageJPEG, chartPNG []byte) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}

	if err := e.Write(out, rep, imageJPEG, chartPNG); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}

func factLines(rep *entity.WasteReport) []string {
	na := func(s string) string {
		if !rep.FactsAvailable || s == "" {
			return "N/A"
		}
		return s
	}
	num := func(v float64) string {
		if !rep.FactsAvailable {
			return "N/A"
		}
		return fmt.Sprintf("%g", v)
	}
	score := "N/A"
	if rep.FactsAvailable {
		score = fmt.Sprintf("%d/100", rep.RecyclabilityScore)
	}

	return []string{
		fmt.Sprintf("Description: %s", na(rep.Fact.Description)),
		fmt.Sprintf("How to Recycle: %s", na(rep.Fact.Recycle)),
		fmt.Sprintf("Hazard: %s", na(rep.Fact.Hazard)),
		fmt.Sprintf("Estimated Decomposition Time: %s", na(rep.Fact.DecompositionTime)),
		fmt.Sprintf("Eco Tip: %s", na(rep.Fact.Tip)),
		fmt.Sprintf("Recyclability Score: %s", score),
		fmt.Sprintf("Carbon saving (kg/kg): %s", num(rep.Fact.CarbonSavingKgPerKg)),
		fmt.Sprintf("Landfill reduction (m3/ton): %s", num(rep.Fact.LandfillReductionM3PerTon)),
	}
}

// stageTemp writes payload bytes to a throwaway file so gofpdf can embed
// them by path. Callers own removal.
func stageTemp(data []byte, pattern string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// placeImage embeds an image file into a fixed box, scaled to preserve the
// source aspect ratio. A payload that cannot be decoded leaves the pdf in
// its error state, surfaced by Output.
func placeImage(pdf *gofpdf.Fpdf, path string, data []byte, x, y, boxW, boxH float64) {
	w, h := boxW, boxH
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil && cfg.Width > 0 && cfg.Height > 0 {
		scale := boxW / float64(cfg.Width)
		if s := boxH / float64(cfg.Height); s < scale {
			scale = s
		}
		w = float64(cfg.Width) * scale
		h = float64(cfg.Height) * scale
	}

	pdf.ImageOptions(path, x, y, w, h, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
}
