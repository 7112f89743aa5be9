package chart

import (
	"bytes"
	"errors"
	"fmt"

	chartlib "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	barFill   = drawing.ColorFromHex("16A085")
	donutFill = drawing.ColorFromHex("27AE60")
	donutRest = drawing.ColorFromHex("E5E8E8")
)

// ConfidenceBar renders the per-class confidence distribution as a PNG bar
// chart: one bar per label, height = probability * 100, y-axis fixed 0-100,
// x labels rotated for legibility.
func ConfidenceBar(probs []float32, labels []string) ([]byte, error) {
	if len(probs) == 0 || len(probs) != len(labels) {
		return nil, errors.New("chart: probability and label counts must match and be non-empty")
	}

	bars := make([]chartlib.Value, len(probs))
	for i, p := range probs {
		bars[i] = chartlib.Value{
			Label: labels[i],
			Value: float64(p) * 100.0,
			Style: chartlib.Style{FillColor: barFill, StrokeColor: barFill},
		}
	}

	graph := chartlib.BarChart{
		Title:    "Confidence distribution across classes",
		Width:    1000,
		Height:   440,
		BarWidth: 56,
		XAxis: chartlib.Style{
			TextRotationDegrees: 45.0,
		},
		YAxis: chartlib.YAxis{
			Range: &chartlib.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chartlib.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart: render confidence bars: %w", err)
	}
	return buf.Bytes(), nil
}

// RecyclabilityDonut renders the 0-100 recyclability score as a PNG donut
// with two wedges: the score in green and the remainder in neutral grey.
func RecyclabilityDonut(score int) ([]byte, error) {
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("chart: recyclability score %d out of range [0,100]", score)
	}

	graph := chartlib.DonutChart{
		Width:  400,
		Height: 400,
		Values: []chartlib.Value{
			{
				Value: float64(score),
				Label: fmt.Sprintf("%d%% Recyclable", score),
				Style: chartlib.Style{FillColor: donutFill},
			},
			{
				Value: float64(100 - score),
				Label: " ",
				Style: chartlib.Style{FillColor: donutRest},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chartlib.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart: render recyclability donut: %w", err)
	}
	return buf.Bytes(), nil
}
