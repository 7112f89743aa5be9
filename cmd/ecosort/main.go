package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	classificationService "EcoSortAI/internal/api/classification/service"
	"EcoSortAI/internal/entity"
	"EcoSortAI/pkg/chart"
	"EcoSortAI/pkg/classifier"
	"EcoSortAI/pkg/log"
	"EcoSortAI/pkg/preprocess"
	"EcoSortAI/pkg/report"

	"github.com/joho/godotenv"
	"golang.org/x/net/context"
)

// ecosort is the single-shot shell: classify one waste image from disk,
// print the guidance, and optionally write the PDF report to a
// caller-supplied path. Everything runs synchronously on the main
// goroutine, same as one interaction of the web shell.
func main() {
	imagePath := flag.String("image", "", "path to the waste image (jpg/png/bmp)")
	outPath := flag.String("out", "", "write the PDF report to this path (optional)")
	flag.Parse()

	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "usage: ecosort -image <file> [-out report.pdf]")
		os.Exit(2)
	}

	model, err := classifier.NewONNXClassifier()
	if err != nil {
		logger.Fatalf("Could not load classifier model: %v", err)
	}
	defer model.Close()

	imageData, err := os.ReadFile(*imagePath)
	if err != nil {
		logger.Fatalf("Could not read image %s: %v", *imagePath, err)
	}

	svc := classificationService.NewClassificationService(logger, model, report.NewExporter())

	rep, err := svc.Classify(context.Background(), imageData)
	if err != nil {
		logger.Fatalf("Classification failed: %v", err)
	}

	printReport(rep)

	if *outPath == "" {
		return
	}

	preview, err := preprocess.ReportJPEG(imageData, 600)
	if err != nil {
		logger.Fatalf("Could not prepare report image: %v", err)
	}

	chartPNG, err := chart.ConfidenceBar(rep.Prediction.Probabilities, model.Labels())
	if err != nil {
		logger.Fatalf("Could not render confidence chart: %v", err)
	}

	if err := report.NewExporter().WriteFile(*outPath, rep, preview, chartPNG); err != nil {
		logger.Fatalf("Could not write PDF report: %v", err)
	}

	fmt.Printf("Report saved to %s\n", *outPath)
}

func printReport(rep *entity.WasteReport) {
	fmt.Printf("Predicted: %s (%.2f%%)\n\n", strings.ToUpper(rep.Prediction.Label), rep.Prediction.Confidence)

	if !rep.FactsAvailable {
		fmt.Println("No recycling guidance available for this category.")
		return
	}

	fmt.Printf("Description: %s\n", rep.Fact.Description)
	fmt.Printf("How to Recycle: %s\n", rep.Fact.Recycle)
	fmt.Printf("Hazard Level: %s\n", rep.Fact.Hazard)
	fmt.Printf("Estimated Decomposition Time: %s\n", rep.Fact.DecompositionTime)
	fmt.Printf("Eco Tip: %s\n", rep.Fact.Tip)
	fmt.Printf("Recyclability Score: %d/100\n", rep.RecyclabilityScore)
	fmt.Printf("Carbon saving (kg/kg): %g\n", rep.Fact.CarbonSavingKgPerKg)
	fmt.Printf("Landfill reduction (m3/ton): %g\n", rep.Fact.LandfillReductionM3PerTon)
}
