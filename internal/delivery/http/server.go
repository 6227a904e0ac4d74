package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/config"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/delivery/http/handler"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/delivery/http/middleware"
)

// Server is the fiber HTTP surface of the travel companion.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	itineraryHandler *handler.ItineraryHandler
	countdownHandler *handler.CountdownHandler
	budgetHandler    *handler.BudgetHandler
	mapHandler       *handler.MapHandler
	guideHandler     *handler.GuideHandler
	narrationHandler *handler.NarrationHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	itineraryHandler *handler.ItineraryHandler,
	countdownHandler *handler.CountdownHandler,
	budgetHandler *handler.BudgetHandler,
	mapHandler *handler.MapHandler,
	guideHandler *handler.GuideHandler,
	narrationHandler *handler.NarrationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Hellesylt Cruise Companion",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		itineraryHandler: itineraryHandler,
		countdownHandler: countdownHandler,
		budgetHandler:    budgetHandler,
		mapHandler:       mapHandler,
		guideHandler:     guideHandler,
		narrationHandler: narrationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Itinerary
	api.Get("/itinerary", s.itineraryHandler.GetItinerary)
	api.Get("/timeline", s.itineraryHandler.GetTimeline)
	api.Post("/itinerary/:id/toggle", s.itineraryHandler.ToggleCompleted)

	// Countdown
	api.Get("/countdown", s.countdownHandler.GetCountdown)

	// Budget
	api.Get("/budget/summary", s.budgetHandler.GetSummary)
	api.Post("/budget/paid/:id", s.budgetHandler.TogglePaid)
	api.Post("/budget/expenses", s.budgetHandler.AddExpense)
	api.Delete("/budget/expenses/:id", s.budgetHandler.RemoveExpense)
	api.Post("/budget/convert", s.budgetHandler.Convert)

	// Map
	api.Get("/map/pois", s.mapHandler.GetPOIs)
	api.Get("/map/position", s.mapHandler.GetPosition)
	api.Post("/map/position", s.mapHandler.ReportPosition)

	// Guide panels
	api.Get("/guide/weather", s.guideHandler.GetWeather)
	api.Get("/guide/solar", s.guideHandler.GetSolar)
	api.Get("/guide/phrasebook", s.guideHandler.GetPhrasebook)
	api.Get("/guide/links", s.guideHandler.GetLinks)
	api.Get("/guide/sos", s.guideHandler.GetSOS)

	// Narration
	api.Get("/activities/:id/audio", s.narrationHandler.GetAudioGuide)
	api.Post("/narration/play", s.narrationHandler.Play)
	api.Post("/narration/stop", s.narrationHandler.Stop)
	api.Get("/narration/status", s.narrationHandler.GetStatus)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
