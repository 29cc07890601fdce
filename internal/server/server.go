package server

import (
	"os"
	"path/filepath"

	"careervr-be/internal/bootstrap"
	"careervr-be/internal/config"
	"careervr-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const indexFile = "index.html"

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	app.Static("/static", cfg.App.StaticDir)
	app.Get("/", serveIndex(cfg.App.StaticDir))

	registerRoutes(app, container, cfg)

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
	s.container.Logger.Info("HTTP", "Server is running", map[string]interface{}{"port": s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container, cfg *config.Config) {
	c.CareerController.RegisterRoutes(app)

	api := app.Group("/api")
	c.CatalogController.RegisterRoutes(api, serverutils.NewJwtMiddleware(cfg.Keys.AdminJwtSecret))
}

func serveIndex(staticDir string) fiber.Handler {
	path := filepath.Join(staticDir, indexFile)
	return func(ctx *fiber.Ctx) error {
		if _, err := os.Stat(path); err != nil {
			return ctx.JSON(fiber.Map{"error": "Main app not found. Place " + indexFile + " in " + staticDir + "/"})
		}
		return ctx.SendFile(path)
	}
}
