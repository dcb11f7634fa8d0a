package rest

import (
	"errors"

	"github.com/dhank77/undangan.love/internal/infra/auth"
	"github.com/dhank77/undangan.love/internal/infra/config"
	"github.com/dhank77/undangan.love/internal/infra/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var errMissingIdentity = errors.New("no identity on request")

type AppDeps struct {
	Server   ServerInterface
	Identity *auth.IdentityProvider
	Metrics  *metrics.Metrics
	Logger   *logrus.Logger
	Config   *config.ServerConfig
}

// NewApp builds the fiber application with its middleware chain, the /api
// route table, /health and /metrics.
func NewApp(d AppDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
		BodyLimit:    d.Config.BodyLimit,
		IdleTimeout:  d.Config.IdleTimeout,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(d.Logger))
	app.Use(Metrics(d.Metrics))
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Config.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics.Registry, promhttp.HandlerOpts{})))

	api := app.Group("/api", Identify(d.Identity))
	RegisterHandlers(api, d.Server)

	return app
}
