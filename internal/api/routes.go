package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Use(handler.MetricsMiddleware)

	app.Get("/healthz", handler.Health)
	if registry := handler.metrics.Registry(); registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	registerAPIRoutes(app, handler)
}

// Guards are attached per route rather than on the /api group so a rejected
// request is still attributed to the endpoint it targeted.
func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	cycles := api.Group("/cycles")
	cycles.Get("", handler.ownerOnly(handler.GetCycles)...)
	cycles.Post("", handler.ownerOnly(handler.LogPeriod)...)
	cycles.Get("/defaults", handler.ownerOnly(handler.GetFormDefaults)...)

	api.Get("/prediction", handler.ownerOnly(handler.GetPrediction)...)
	api.Get("/summary", handler.ownerOnly(handler.GetSummary)...)
	api.Get("/calendar", handler.ownerOnly(handler.GetCalendar)...)
	api.Get("/symptoms", handler.ownerOnly(handler.GetSymptoms)...)

	logs := api.Group("/logs")
	logs.Get("/:date", handler.ownerOnly(handler.GetDayLog)...)
	logs.Post("/:date/toggle", handler.ownerOnly(handler.ToggleSymptom)...)

	export := api.Group("/export")
	export.Get("/json", handler.ownerOnly(handler.ExportJSON)...)
	export.Get("/csv", handler.ownerOnly(handler.ExportCSV)...)
}

func (handler *Handler) ownerOnly(endpoint fiber.Handler) []fiber.Handler {
	return []fiber.Handler{handler.AuthRequired, handler.LanguageMiddleware, endpoint}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
