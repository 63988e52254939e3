package farmerController

import (
	"kisan/database"
	"kisan/metrics"
	"kisan/middleware"
	"kisan/models"
	"kisan/responses"
	farmerValidator "kisan/validators/farmer"
	paramsValidator "kisan/validators/params"
	"kisan/validators/schema"

	"github.com/gofiber/fiber/v2"
)

// ListFarmers returns every farmer with its lands
func ListFarmers(c *fiber.Ctx) error {
	var farmers []models.Farmer
	if err := database.Database.List(c.UserContext(), &farmers, database.WithLands); err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch farmers!", err)
	}
	return c.JSON(responses.Farmers(farmers))
}

// CreateFarmer registers a new farmer. date_registered is stamped by the model.
func CreateFarmer(c *fiber.Ctx) error {
	reqData, ok := c.Locals(farmerValidator.Schema.LocalKey()).(schema.Values)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	farmer := models.Farmer{
		Name:     reqData.String("name"),
		Village:  reqData.String("village"),
		Phone:    reqData.String("phone"),
		LandArea: reqData.Decimal("land_area"),
	}
	if err := database.Database.Create(c.UserContext(), &farmer); err != nil {
		return middleware.StoreErrorResponse(c, "Farmer", "Failed to create farmer!", err)
	}
	metrics.RecordWrite("farmer", "create")

	return c.Status(fiber.StatusCreated).JSON(responses.Farmer(farmer))
}

// GetFarmer returns one farmer with its lands
func GetFarmer(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)

	var farmer models.Farmer
	if err := database.Database.Find(c.UserContext(), &farmer, id, database.WithLands); err != nil {
		return middleware.StoreErrorResponse(c, "Farmer", "Failed to fetch farmer!", err)
	}
	return c.JSON(responses.Farmer(farmer))
}

// UpdateFarmer serves both PUT and PATCH; the validator decides which fields are required.
func UpdateFarmer(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)
	reqData, ok := c.Locals(farmerValidator.Schema.LocalKey()).(schema.Values)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var farmer models.Farmer
	if err := database.Database.Update(c.UserContext(), &farmer, id, farmerValidator.Schema.Columns(reqData)); err != nil {
		return middleware.StoreErrorResponse(c, "Farmer", "Failed to update farmer!", err)
	}
	metrics.RecordWrite("farmer", "update")

	if err := database.Database.Find(c.UserContext(), &farmer, id, database.WithLands); err != nil {
		return middleware.StoreErrorResponse(c, "Farmer", "Failed to fetch farmer!", err)
	}
	return c.JSON(responses.Farmer(farmer))
}

// DeleteFarmer removes the farmer together with its lands and applications
func DeleteFarmer(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)

	if err := database.Database.Delete(c.UserContext(), &models.Farmer{}, id); err != nil {
		return middleware.StoreErrorResponse(c, "Farmer", "Failed to delete farmer!", err)
	}
	metrics.RecordWrite("farmer", "delete")

	return c.SendStatus(fiber.StatusNoContent)
}
