package app

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Saannndddyyyyy/best-manager/internal/catalog"
	"github.com/Saannndddyyyyy/best-manager/internal/config"
	"github.com/Saannndddyyyyy/best-manager/internal/event"
	"github.com/Saannndddyyyyy/best-manager/internal/export"
	"github.com/Saannndddyyyyy/best-manager/internal/logger"
	"github.com/Saannndddyyyyy/best-manager/internal/market"
	"github.com/Saannndddyyyyy/best-manager/internal/monitoring"
	"github.com/Saannndddyyyyy/best-manager/internal/security"
	"github.com/Saannndddyyyyy/best-manager/internal/sim"
	"github.com/Saannndddyyyyy/best-manager/internal/ws"
)

const (
	marketSeed    = 42
	marketSamples = 50
)

type Server struct {
	app *fiber.App
	cfg *config.Config
}

func NewServer() (*Server, error) {
	cfg := config.Load()

	if err := logger.Init(); err != nil {
		return nil, err
	}
	monitoring.Init()

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		cat = loaded
		logger.Log.Info("catalog loaded", zap.String("path", cfg.CatalogPath))
	}

	bus := event.NewBus()
	hub := ws.NewHub()

	simService := sim.NewService(cat, bus, logger.Log)
	exportService := export.NewService(simService, bus, logger.Log)
	history := market.Generate(marketSeed, marketSamples)

	sim.RegisterConsumers(bus, hub)

	app := fiber.New()

	app.Use(func(c *fiber.Ctx) error {
		monitoring.HttpRequests.WithLabelValues(c.Method(), c.Path()).Inc()
		return c.Next()
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/ws", fiberws.New(hub.Handler))

	api := app.Group("/api", security.APIKeyGuard(cfg.APIKey))
	sim.RegisterRoutes(api, simService)
	export.RegisterRoutes(api, exportService)
	market.RegisterRoutes(api, history)
	api.Get("/briefing", briefingHandler)

	return &Server{app: app, cfg: cfg}, nil
}

func (s *Server) Start() error {
	return s.app.Listen(":" + s.cfg.Port)
}

// App exposes the fiber app for in-process request testing.
func (s *Server) App() *fiber.App {
	return s.app
}
