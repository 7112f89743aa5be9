package classificationHandler

import (
	"encoding/base64"
	"time"

	"EcoSortAI/internal/api/classification"
	contextPkg "EcoSortAI/pkg/context"
	"EcoSortAI/pkg/handlerUtil"
	"EcoSortAI/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

// imageBytes extracts the raw image payload from either a multipart upload
// or a JSON base64 body, mirroring both input modes the shells accept.
func (h *ClassificationHandler) imageBytes(ctx *fiber.Ctx, requestID string, errHandler *handlerUtil.ErrorHandler) ([]byte, error, bool) {
	file, err := ctx.FormFile("image")
	if err == nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"file_name":  file.Filename,
			"file_size":  file.Size,
		}).Debug("Processing file upload")

		if err := h.utils.ValidateImageFile(file); err != nil {
			return nil, errHandler.Handle(ctx, requestID, err, ctx.Path(), "validate_image_file"), false
		}

		fileContent, err := file.Open()
		if err != nil {
			return nil, errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_file"), false
		}
		defer fileContent.Close()

		data, err := h.utils.ReadFileBytes(fileContent)
		if err != nil {
			return nil, errHandler.Handle(ctx, requestID, err, ctx.Path(), "read_file"), false
		}
		return data, nil, true
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing JSON request")

	var req classification.ClassifyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body"), false
	}

	if err := h.validator.Struct(req); err != nil {
		return nil, errHandler.HandleValidationError(ctx, requestID, err, ctx.Path()), false
	}

	data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return nil, errHandler.Handle(ctx, requestID, classification.ErrImageDecode, ctx.Path(), "decode_base64"), false
	}
	return data, nil, true
}

func (h *ClassificationHandler) Classify(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing waste classification request")

	imageData, resp, ok := h.imageBytes(ctx, requestID, errHandler)
	if !ok {
		return resp
	}

	rep, err := h.classificationService.Classify(c, imageData)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "classify_image")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"label":      rep.Prediction.Label,
			"confidence": rep.Prediction.Confidence,
		}).Info("Waste classification successful")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, classification.ClassifyResponse{
			Data: *rep,
		})
	}
}

func (h *ClassificationHandler) DownloadReport(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing PDF report request")

	imageData, resp, ok := h.imageBytes(ctx, requestID, errHandler)
	if !ok {
		return resp
	}

	pdfData, err := h.classificationService.GenerateReport(c, imageData)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "generate_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"size_bytes": len(pdfData),
		}).Info("PDF report generated")
		ctx.Set(fiber.HeaderContentType, "application/pdf")
		ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="EcoSortAI_Report.pdf"`)
		return ctx.Send(pdfData)
	}
}

func (h *ClassificationHandler) Labels(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, classification.LabelsResponse{
		Labels: h.classificationService.Labels(),
	})
}

func (h *ClassificationHandler) LabelInfo(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	label := ctx.Params("label")
	fact, score, err := h.classificationService.LabelInfo(label)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "label_info")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, classification.LabelInfoResponse{
		Label:              label,
		Fact:               fact,
		RecyclabilityScore: score,
	})
}

func (h *ClassificationHandler) RecyclabilityChart(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	label := ctx.Params("label")
	png, err := h.classificationService.RecyclabilityChart(label)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "recyclability_chart")
	}

	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Send(png)
}

func (h *ClassificationHandler) RandomFact(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, classification.RandomFactResponse{
		Fact: h.classificationService.RandomFact(),
	})
}

func (h *ClassificationHandler) handleClassifyWebSocket(c *websocket.Conn) {
	h.log.Info("Waste classification WebSocket client connected")
	defer h.log.Info("Waste classification WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		h.log.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Waste classification WebSocket error: %v", err)
			} else {
				h.log.Info("Waste classification WebSocket connection closed")
			}
			break
		}

		if messageType != websocket.BinaryMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		result, err := h.classificationService.ClassifyFrame(message)
		if err != nil {
			h.log.Errorf("Error classifying frame: %v", err)
			if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(result); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}
