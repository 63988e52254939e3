package schemeController

import (
	"kisan/database"
	"kisan/metrics"
	"kisan/middleware"
	"kisan/models"
	"kisan/responses"
	paramsValidator "kisan/validators/params"
	"kisan/validators/schema"
	schemeValidator "kisan/validators/scheme"

	"github.com/gofiber/fiber/v2"
)

func ListSchemes(c *fiber.Ctx) error {
	var schemes []models.Scheme
	if err := database.Database.List(c.UserContext(), &schemes); err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch schemes!", err)
	}
	return c.JSON(responses.Schemes(schemes))
}

func CreateScheme(c *fiber.Ctx) error {
	reqData, ok := c.Locals(schemeValidator.Schema.LocalKey()).(schema.Values)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	scheme := models.Scheme{
		Name:        reqData.String("name"),
		Description: reqData.String("description"),
		Eligibility: reqData.String("eligibility"),
		StartDate:   reqData.Date("start_date"),
		EndDate:     reqData.Date("end_date"),
	}
	if err := database.Database.Create(c.UserContext(), &scheme); err != nil {
		return middleware.StoreErrorResponse(c, "Scheme", "Failed to create scheme!", err)
	}
	metrics.RecordWrite("scheme", "create")

	return c.Status(fiber.StatusCreated).JSON(responses.Scheme(scheme))
}

func GetScheme(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)

	var scheme models.Scheme
	if err := database.Database.Find(c.UserContext(), &scheme, id); err != nil {
		return middleware.StoreErrorResponse(c, "Scheme", "Failed to fetch scheme!", err)
	}
	return c.JSON(responses.Scheme(scheme))
}

func UpdateScheme(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)
	reqData, ok := c.Locals(schemeValidator.Schema.LocalKey()).(schema.Values)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var scheme models.Scheme
	if err := database.Database.Update(c.UserContext(), &scheme, id, schemeValidator.Schema.Columns(reqData)); err != nil {
		return middleware.StoreErrorResponse(c, "Scheme", "Failed to update scheme!", err)
	}
	metrics.RecordWrite("scheme", "update")

	if err := database.Database.Find(c.UserContext(), &scheme, id); err != nil {
		return middleware.StoreErrorResponse(c, "Scheme", "Failed to fetch scheme!", err)
	}
	return c.JSON(responses.Scheme(scheme))
}

// DeleteScheme also removes every application made to the scheme
func DeleteScheme(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)

	if err := database.Database.Delete(c.UserContext(), &models.Scheme{}, id); err != nil {
		return middleware.StoreErrorResponse(c, "Scheme", "Failed to delete scheme!", err)
	}
	metrics.RecordWrite("scheme", "delete")

	return c.SendStatus(fiber.StatusNoContent)
}
