package config

import (
	classificationHandler "EcoSortAI/internal/api/classification/handler"
	classificationService "EcoSortAI/internal/api/classification/service"
	"EcoSortAI/internal/middleware"
	"EcoSortAI/pkg/classifier"
	"EcoSortAI/pkg/report"
	"EcoSortAI/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	handlers   []handler
	model      classifier.IClassifier
	exporter   report.IExporter
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.model == nil {
		return nil, fmt.Errorf("classifier is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithClassifier loads the pretrained ONNX model once for the whole
// process. A load failure aborts startup; there is no fallback model.
func WithClassifier() ServerOption {
	return func(s *Server) error {
		model, err := classifier.NewONNXClassifier()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to load classifier model: %v", err)
			}
			return fmt.Errorf("failed to load classifier model: %w", err)
		}
		s.model = model
		return nil
	}
}

func WithExporter() ServerOption {
	return func(s *Server) error {
		s.exporter = report.NewExporter()
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Classification Domain
	classificationServices := classificationService.NewClassificationService(s.log, s.model, s.exporter)
	classificationHandlers := classificationHandler.New(s.log, s.validator, s.middleware, classificationServices, s.utils)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, classificationHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.model != nil {
			s.model.Close()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
