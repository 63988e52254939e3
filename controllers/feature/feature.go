package featureController

import (
	"kisan/database"
	"kisan/metrics"
	"kisan/middleware"
	"kisan/models"
	"kisan/responses"
	featureValidator "kisan/validators/feature"
	paramsValidator "kisan/validators/params"
	"kisan/validators/schema"

	"github.com/gofiber/fiber/v2"
)

func ListFeatures(c *fiber.Ctx) error {
	var features []models.Feature
	if err := database.Database.List(c.UserContext(), &features); err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch features!", err)
	}
	return c.JSON(responses.Features(features))
}

func CreateFeature(c *fiber.Ctx) error {
	reqData, ok := c.Locals(featureValidator.Schema.LocalKey()).(schema.Values)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	feature := models.Feature{
		Title:       reqData.String("title"),
		Description: reqData.String("description"),
		IconName:    reqData.String("icon_name"),
		IconColor:   reqData.String("icon_color"),
	}
	if err := database.Database.Create(c.UserContext(), &feature); err != nil {
		return middleware.StoreErrorResponse(c, "Feature", "Failed to create feature!", err)
	}
	metrics.RecordWrite("feature", "create")

	return c.Status(fiber.StatusCreated).JSON(responses.Feature(feature))
}

func GetFeature(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)

	var feature models.Feature
	if err := database.Database.Find(c.UserContext(), &feature, id); err != nil {
		return middleware.StoreErrorResponse(c, "Feature", "Failed to fetch feature!", err)
	}
	return c.JSON(responses.Feature(feature))
}

func UpdateFeature(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)
	reqData, ok := c.Locals(featureValidator.Schema.LocalKey()).(schema.Values)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var feature models.Feature
	if err := database.Database.Update(c.UserContext(), &feature, id, featureValidator.Schema.Columns(reqData)); err != nil {
		return middleware.StoreErrorResponse(c, "Feature", "Failed to update feature!", err)
	}
	metrics.RecordWrite("feature", "update")

	if err := database.Database.Find(c.UserContext(), &feature, id); err != nil {
		return middleware.StoreErrorResponse(c, "Feature", "Failed to fetch feature!", err)
	}
	return c.JSON(responses.Feature(feature))
}

func DeleteFeature(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)

	if err := database.Database.Delete(c.UserContext(), &models.Feature{}, id); err != nil {
		return middleware.StoreErrorResponse(c, "Feature", "Failed to delete feature!", err)
	}
	metrics.RecordWrite("feature", "delete")

	return c.SendStatus(fiber.StatusNoContent)
}
