package classificationHandler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"EcoSortAI/internal/api/classification"
	"EcoSortAI/internal/entity"
	"EcoSortAI/internal/knowledge"
	"EcoSortAI/internal/middleware"
	"EcoSortAI/pkg/log"
	"EcoSortAI/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// stubService returns canned results so the handlers can be exercised
// without a model session.
type stubService struct {
	report *entity.WasteReport
	pdf    []byte
	err    error
}

func (s *stubService) Classify(ctx context.Context, imageData []byte) (*entity.WasteReport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func (s *stubService) ClassifyFrame(frame []byte) (*entity.WastePrediction, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.report.Prediction, nil
}

func (s *stubService) GenerateReport(ctx context.Context, imageData []byte) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pdf, nil
}

func (s *stubService) Labels() []string { return knowledge.Labels() }

func (s *stubService) LabelInfo(label string) (knowledge.WasteFact, int, error) {
	fact, ok := knowledge.Lookup(label)
	if !ok {
		return knowledge.WasteFact{}, 0, classification.ErrLabelNotFound
	}
	score, _ := knowledge.Score(label)
	return fact, score, nil
}

func (s *stubService) RecyclabilityChart(label string) ([]byte, error) {
	if _, ok := knowledge.Score(label); !ok {
		return nil, classification.ErrLabelNotFound
	}
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	_ = png.Encode(&buf, img)
	return buf.Bytes(), nil
}

func (s *stubService) RandomFact() string { return "Glass is endlessly recyclable." }

func sampleReport() *entity.WasteReport {
	fact, _ := knowledge.Lookup("plastic")
	score, _ := knowledge.Score("plastic")
	return &entity.WasteReport{
		Prediction: entity.WastePrediction{
			Label:         "plastic",
			Confidence:    91.5,
			Probabilities: make([]float32, 12),
		},
		Fact:               fact,
		RecyclabilityScore: score,
		FactsAvailable:     true,
		ModelName:          "stub_model.onnx",
		GeneratedAt:        time.Now(),
	}
}

func newTestApp(t *testing.T, svc *stubService) *fiber.App {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	logger := log.NewLogger()
	handler := New(logger, validator.New(validator.WithRequiredStructEnabled()), middleware.New(logger), svc, utils.New())

	app := fiber.New()
	handler.Start(app.Group("/api/v1"))
	return app
}

func pngPayload(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func multipartRequest(t *testing.T, target string, imageData []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="image"; filename="waste.png"`}
	header["Content-Type"] = []string{"image/png"}
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create multipart part: %v", err)
	}
	if _, err := part.Write(imageData); err != nil {
		t.Fatalf("write multipart part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestClassify_MultipartUpload(t *testing.T) {
	app := newTestApp(t, &stubService{report: sampleReport()})

	req := multipartRequest(t, "/api/v1/waste/classify", pngPayload(t))
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out classification.ClassifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Data.Prediction.Label != "plastic" {
		t.Fatalf("expected label 'plastic', got %q", out.Data.Prediction.Label)
	}
	if !out.Data.FactsAvailable {
		t.Fatal("expected facts in response")
	}
}

func TestClassify_JSONBase64(t *testing.T) {
	app := newTestApp(t, &stubService{report: sampleReport()})

	payload, err := json.Marshal(classification.ClassifyRequest{
		ImageBase64: base64.StdEncoding.EncodeToString(pngPayload(t)),
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/waste/classify", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestClassify_MissingImage(t *testing.T) {
	app := newTestApp(t, &stubService{report: sampleReport()})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/waste/classify", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestClassify_DecodeFailure(t *testing.T) {
	app := newTestApp(t, &stubService{err: classification.ErrImageDecode})

	req := multipartRequest(t, "/api/v1/waste/classify", []byte("not an image"))
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var out struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Code != "IMAGE_DECODE_FAILED" {
		t.Fatalf("expected code IMAGE_DECODE_FAILED, got %q", out.Code)
	}
}

func TestDownloadReport(t *testing.T) {
	app := newTestApp(t, &stubService{
		report: sampleReport(),
		pdf:    []byte("%PDF-1.4 stub"),
	})

	req := multipartRequest(t, "/api/v1/waste/report", pngPayload(t))
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, "EcoSortAI_Report.pdf") {
		t.Fatalf("unexpected content disposition %q", cd)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Fatal("expected PDF payload")
	}
}

func TestLabels(t *testing.T) {
	app := newTestApp(t, &stubService{report: sampleReport()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/waste/labels", nil)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var out classification.LabelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.Labels) != 12 {
		t.Fatalf("expected 12 labels, got %d", len(out.Labels))
	}
}

func TestLabelInfo_NotFound(t *testing.T) {
	app := newTestApp(t, &stubService{report: sampleReport()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/waste/labels/uranium", nil)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestLabelInfo(t *testing.T) {
	app := newTestApp(t, &stubService{report: sampleReport()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/waste/labels/metal", nil)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out classification.LabelInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.RecyclabilityScore != 98 {
		t.Fatalf("expected metal score 98, got %d", out.RecyclabilityScore)
	}
}

func TestRecyclabilityChart(t *testing.T) {
	app := newTestApp(t, &stubService{report: sampleReport()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/waste/labels/glass/chart", nil)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
}

func TestRandomFact(t *testing.T) {
	app := newTestApp(t, &stubService{report: sampleReport()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/waste/facts/random", nil)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var out classification.RandomFactResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Fact == "" {
		t.Fatal("expected a fact")
	}
}
