package classificationHandler

import (
	classificationService "EcoSortAI/internal/api/classification/service"
	"EcoSortAI/internal/middleware"
	"EcoSortAI/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ClassificationHandler struct {
	log                   *logrus.Logger
	validator             *validator.Validate
	middleware            middleware.Middleware
	classificationService classificationService.IClassificationService
	utils                 utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	cs classificationService.IClassificationService,
	utils utils.IUtils,
) *ClassificationHandler {
	return &ClassificationHandler{
		log:                   log,
		validator:             validator,
		middleware:            middleware,
		classificationService: cs,
		utils:                 utils,
	}
}

func (h *ClassificationHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	waste := srv.Group("/waste")
	waste.Use("/ws", wsMiddleware)
	waste.Get("/ws", websocket.New(h.handleClassifyWebSocket))

	waste.Post("/classify", h.middleware.NewRateLimiter, h.Classify)
	waste.Post("/report", h.middleware.NewRateLimiter, h.DownloadReport)

	waste.Get("/labels", h.Labels)
	waste.Get("/labels/:label", h.LabelInfo)
	waste.Get("/labels/:label/chart", h.RecyclabilityChart)
	waste.Get("/facts/random", h.RandomFact)
}
