package server

import (
	"log"

	"legal-ai-be/internal/bootstrap"
	"legal-ai-be/internal/config"
	"legal-ai-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB, text-only API
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.ConversationController.RegisterRoutes(api)
	c.ChatController.RegisterRoutes(api)
	c.SearchController.RegisterRoutes(api)
	c.SessionController.RegisterRoutes(api)
}
