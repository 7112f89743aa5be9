package classificationService

import (
	"bytes"
	"time"

	"EcoSortAI/internal/api/classification"
	"EcoSortAI/internal/entity"
	"EcoSortAI/internal/knowledge"
	"EcoSortAI/pkg/chart"
	"EcoSortAI/pkg/classifier"
	contextPkg "EcoSortAI/pkg/context"
	"EcoSortAI/pkg/preprocess"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// reportImageSize is the square box the uploaded image is downscaled into
// before PDF embedding.
const reportImageSize = 600

func (s *classificationService) Classify(ctx context.Context, imageData []byte) (*entity.WasteReport, error) {
	requestID := contextPkg.GetRequestID(ctx)

	tensor, err := preprocess.ImageTensor(imageData)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to decode uploaded image")
		return nil, classification.ErrImageDecode
	}

	probs, err := s.model.Predict(tensor)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Model inference failed")
		return nil, classification.ErrInferenceFailed
	}

	result := classifier.Interpret(probs, s.model.Labels())

	rep := &entity.WasteReport{
		Prediction: entity.WastePrediction{
			Label:         result.Label,
			Confidence:    result.Confidence,
			Probabilities: result.Probabilities,
		},
		ModelName:   s.model.ModelName(),
		GeneratedAt: time.Now(),
	}

	// A label missing from the knowledge base degrades to placeholders
	// instead of failing; the UI always has something to show.
	fact, ok := knowledge.Lookup(result.Label)
	score, scoreOK := knowledge.Score(result.Label)
	if !ok || !scoreOK {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"label":      result.Label,
		}).Warn("Predicted label missing from knowledge base")
		return rep, nil
	}

	rep.Fact = fact
	rep.RecyclabilityScore = score
	rep.FactsAvailable = true

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"label":      result.Label,
		"confidence": result.Confidence,
	}).Info("Image classified")

	return rep, nil
}

func (s *classificationService) ClassifyFrame(frame []byte) (*entity.WastePrediction, error) {
	tensor, err := preprocess.ImageTensor(frame)
	if err != nil {
		return nil, classification.ErrImageDecode
	}

	probs, err := s.model.Predict(tensor)
	if err != nil {
		return nil, classification.ErrInferenceFailed
	}

	result := classifier.Interpret(probs, s.model.Labels())
	return &entity.WastePrediction{
		Label:         result.Label,
		Confidence:    result.Confidence,
		Probabilities: result.Probabilities,
	}, nil
}

func (s *classificationService) GenerateReport(ctx context.Context, imageData []byte) ([]byte, error) {
	requestID := contextPkg.GetRequestID(ctx)

	rep, err := s.Classify(ctx, imageData)
	if err != nil {
		return nil, err
	}

	preview, err := preprocess.ReportJPEG(imageData, reportImageSize)
	if err != nil {
		// Classify already decoded the same bytes; treat this as an
		// export-stage failure.
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to prepare report image")
		return nil, classification.ErrReportExport
	}

	chartPNG, err := chart.ConfidenceBar(rep.Prediction.Probabilities, s.model.Labels())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to render confidence chart")
		return nil, classification.ErrReportExport
	}

	var buf bytes.Buffer
	if err := s.exporter.Write(&buf, rep, preview, chartPNG); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to export PDF report")
		return nil, classification.ErrReportExport
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"label":      rep.Prediction.Label,
		"size_bytes": buf.Len(),
	}).Info("PDF report generated")

	return buf.Bytes(), nil
}

func (s *classificationService) Labels() []string {
	return s.model.Labels()
}

func (s *classificationService) LabelInfo(label string) (knowledge.WasteFact, int, error) {
	fact, ok := knowledge.Lookup(label)
	if !ok {
		return knowledge.WasteFact{}, 0, classification.ErrLabelNotFound
	}
	score, _ := knowledge.Score(label)
	return fact, score, nil
}

func (s *classificationService) RecyclabilityChart(label string) ([]byte, error) {
	score, ok := knowledge.Score(label)
	if !ok {
		return nil, classification.ErrLabelNotFound
	}

	png, err := chart.RecyclabilityDonut(score)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"label": label,
			"error": err.Error(),
		}).Error("Failed to render recyclability donut")
		return nil, classification.ErrInternalServerError
	}
	return png, nil
}

func (s *classificationService) RandomFact() string {
	return knowledge.RandomFact()
}
