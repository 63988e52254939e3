package dashboardController

import (
	"kisan/database"
	"kisan/middleware"
	"kisan/models"
	"kisan/responses"

	"github.com/gofiber/fiber/v2"
)

// MonthlyData is a fixed placeholder series. It is not computed from stored records.
var MonthlyData = []responses.MonthlyPoint{
	{Month: "Jan", Registrations: 65, Approvals: 53},
	{Month: "Feb", Registrations: 78, Approvals: 60},
	{Month: "Mar", Registrations: 60, Approvals: 45},
	{Month: "Apr", Registrations: 85, Approvals: 70},
	{Month: "May", Registrations: 90, Approvals: 75},
	{Month: "Jun", Registrations: 100, Approvals: 82},
}

// GetDashboardStats returns live record counts and the monthly series
func GetDashboardStats(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var stats responses.Stats
	var err error

	if stats.FarmerCount, err = database.Database.Count(ctx, &models.Farmer{}); err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch dashboard stats!", err)
	}
	if stats.ApprovedApplications, err = database.Database.Count(ctx, &models.SchemeApplication{}, "status = ?", models.StatusApproved); err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch dashboard stats!", err)
	}
	if stats.PendingApplications, err = database.Database.Count(ctx, &models.SchemeApplication{}, "status = ?", models.StatusPending); err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch dashboard stats!", err)
	}
	// every stored scheme counts as active, whatever its dates
	if stats.ActiveSchemes, err = database.Database.Count(ctx, &models.Scheme{}); err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch dashboard stats!", err)
	}

	return c.JSON(responses.DashboardStats{
		Stats:       stats,
		MonthlyData: MonthlyData,
	})
}

// GetFeatures lists the homepage features
func GetFeatures(c *fiber.Ctx) error {
	var features []models.Feature
	if err := database.Database.List(c.UserContext(), &features); err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch features!", err)
	}
	return c.JSON(responses.Features(features))
}
