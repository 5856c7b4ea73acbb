// Package http связывает контроллеры учетных записей с HTTP-сервером fiber.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gogetaccount/internal/account/adapters/http/middleware"
	"gogetaccount/internal/account/ports/presentation"
)

const errorRouteNotFound = "route not found"

// Routes - зависимости маршрутизатора.
type Routes struct {
	SignUp   presentation.Controller
	Login    presentation.Controller
	Registry *prometheus.Registry
	Health   map[string]HealthCheck
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, routes Routes) {
	metrics := NewMetrics(routes.Registry)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(metrics.Middleware())

	api := app.Group("/api")
	api.Post("/signup", AdaptRoute(routes.SignUp))
	api.Post("/login", AdaptRoute(routes.Login))

	app.Get("/health", healthHandler(routes.Health))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(routes.Registry, promhttp.HandlerOpts{})))

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": errorRouteNotFound,
		})
	})
}
