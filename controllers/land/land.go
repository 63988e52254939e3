package landController

import (
	"kisan/database"
	"kisan/metrics"
	"kisan/middleware"
	"kisan/models"
	"kisan/responses"
	landValidator "kisan/validators/land"
	paramsValidator "kisan/validators/params"
	"kisan/validators/schema"

	"github.com/gofiber/fiber/v2"
)

func farmerRef(reqData schema.Values) []database.Reference {
	if !reqData.Has("farmer") {
		return nil
	}
	return []database.Reference{{Field: "farmer", Model: &models.Farmer{}, ID: reqData.ID("farmer")}}
}

func ListLands(c *fiber.Ctx) error {
	var lands []models.Land
	if err := database.Database.List(c.UserContext(), &lands); err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch lands!", err)
	}
	return c.JSON(responses.Lands(lands))
}

// CreateLand adds a plot to an existing farmer
func CreateLand(c *fiber.Ctx) error {
	reqData, ok := c.Locals(landValidator.Schema.LocalKey()).(schema.Values)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	land := models.Land{
		FarmerID: reqData.ID("farmer"),
		Location: reqData.String("location"),
		Area:     reqData.Decimal("area"),
		SoilType: reqData.String("soil_type"),
	}
	if err := database.Database.Create(c.UserContext(), &land, farmerRef(reqData)...); err != nil {
		return middleware.StoreErrorResponse(c, "Land", "Failed to create land!", err)
	}
	metrics.RecordWrite("land", "create")

	return c.Status(fiber.StatusCreated).JSON(responses.Land(land))
}

func GetLand(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)

	var land models.Land
	if err := database.Database.Find(c.UserContext(), &land, id); err != nil {
		return middleware.StoreErrorResponse(c, "Land", "Failed to fetch land!", err)
	}
	return c.JSON(responses.Land(land))
}

// UpdateLand may move the plot to another farmer, which must exist.
func UpdateLand(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)
	reqData, ok := c.Locals(landValidator.Schema.LocalKey()).(schema.Values)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var land models.Land
	err := database.Database.Update(c.UserContext(), &land, id, landValidator.Schema.Columns(reqData), farmerRef(reqData)...)
	if err != nil {
		return middleware.StoreErrorResponse(c, "Land", "Failed to update land!", err)
	}
	metrics.RecordWrite("land", "update")

	if err := database.Database.Find(c.UserContext(), &land, id); err != nil {
		return middleware.StoreErrorResponse(c, "Land", "Failed to fetch land!", err)
	}
	return c.JSON(responses.Land(land))
}

func DeleteLand(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)

	if err := database.Database.Delete(c.UserContext(), &models.Land{}, id); err != nil {
		return middleware.StoreErrorResponse(c, "Land", "Failed to delete land!", err)
	}
	metrics.RecordWrite("land", "delete")

	return c.SendStatus(fiber.StatusNoContent)
}
