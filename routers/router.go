package routers

import (
	healthController "kisan/controllers/health"
	"kisan/metrics"
	applicationRoutes "kisan/routers/applicationRoutes"
	dashboardRoutes "kisan/routers/dashboardRoutes"
	farmerRoutes "kisan/routers/farmerRoutes"
	featureRoutes "kisan/routers/featureRoutes"
	landRoutes "kisan/routers/landRoutes"
	schemeRoutes "kisan/routers/schemeRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup mounts the record API under prefix and the operational
// endpoints at the root.
func Setup(app *fiber.App, prefix string) {
	app.Get("/healthz", healthController.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := app.Group(prefix)
	farmerRoutes.SetupFarmerRoutes(api)
	landRoutes.SetupLandRoutes(api)
	schemeRoutes.SetupSchemeRoutes(api)
	applicationRoutes.SetupApplicationRoutes(api)
	featureRoutes.SetupFeatureRoutes(api)
	dashboardRoutes.SetupDashboardRoutes(api)
}
