package classificationService

import (
	"EcoSortAI/internal/entity"
	"EcoSortAI/internal/knowledge"
	"EcoSortAI/pkg/classifier"
	"EcoSortAI/pkg/report"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IClassificationService interface {
	Classify(ctx context.Context, imageData []byte) (*entity.WasteReport, error)
	ClassifyFrame(frame []byte) (*entity.WastePrediction, error)
	GenerateReport(ctx context.Context, imageData []byte) ([]byte, error)
	Labels() []string
	LabelInfo(label string) (knowledge.WasteFact, int, error)
	RecyclabilityChart(label string) ([]byte, error)
	RandomFact() string
}

type classificationService struct {
	log      *logrus.Logger
	model    classifier.IClassifier
	exporter report.IExporter
}

func NewClassificationService(
	log *logrus.Logger,
	model classifier.IClassifier,
	exporter report.IExporter,
) IClassificationService {
	return &classificationService{
		log:      log,
		model:    model,
		exporter: exporter,
	}
}
