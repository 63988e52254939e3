package dashboardRoutes

import (
	dashboardController "kisan/controllers/dashboard"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(router fiber.Router) {
	router.Get("/dashboard-stats/", dashboardController.GetDashboardStats)
	router.Get("/get-features/", dashboardController.GetFeatures)
}
