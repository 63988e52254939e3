package applicationController

import (
	"kisan/database"
	"kisan/metrics"
	"kisan/middleware"
	"kisan/models"
	"kisan/responses"
	applicationValidator "kisan/validators/application"
	paramsValidator "kisan/validators/params"
	"kisan/validators/schema"

	"github.com/gofiber/fiber/v2"
)

// references returns the farmer and scheme keys present in the request, in wire order.
func references(reqData schema.Values) []database.Reference {
	var refs []database.Reference
	if reqData.Has("farmer") {
		refs = append(refs, database.Reference{Field: "farmer", Model: &models.Farmer{}, ID: reqData.ID("farmer")})
	}
	if reqData.Has("scheme") {
		refs = append(refs, database.Reference{Field: "scheme", Model: &models.Scheme{}, ID: reqData.ID("scheme")})
	}
	return refs
}

// ListApplications returns every application with the current farmer and scheme names
func ListApplications(c *fiber.Ctx) error {
	var applications []models.SchemeApplication
	if err := database.Database.List(c.UserContext(), &applications, database.WithApplicationRefs); err != nil {
		return middleware.ServerErrorResponse(c, "Failed to fetch applications!", err)
	}
	return c.JSON(responses.Applications(applications))
}

// CreateApplication files an application. Status defaults to pending.
func CreateApplication(c *fiber.Ctx) error {
	reqData, ok := c.Locals(applicationValidator.Schema.LocalKey()).(schema.Values)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	application := models.SchemeApplication{
		FarmerID: reqData.ID("farmer"),
		SchemeID: reqData.ID("scheme"),
		Status:   models.ApplicationStatus(reqData.String("status")),
	}
	if err := database.Database.Create(c.UserContext(), &application, references(reqData)...); err != nil {
		return middleware.StoreErrorResponse(c, "Application", "Failed to create application!", err)
	}
	metrics.RecordWrite("application", "create")

	if err := database.Database.Find(c.UserContext(), &application, application.ID, database.WithApplicationRefs); err != nil {
		return middleware.StoreErrorResponse(c, "Application", "Failed to fetch application!", err)
	}
	return c.Status(fiber.StatusCreated).JSON(responses.Application(application))
}

func GetApplication(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)

	var application models.SchemeApplication
	if err := database.Database.Find(c.UserContext(), &application, id, database.WithApplicationRefs); err != nil {
		return middleware.StoreErrorResponse(c, "Application", "Failed to fetch application!", err)
	}
	return c.JSON(responses.Application(application))
}

// UpdateApplication accepts any status transition
func UpdateApplication(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)
	reqData, ok := c.Locals(applicationValidator.Schema.LocalKey()).(schema.Values)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var application models.SchemeApplication
	err := database.Database.Update(c.UserContext(), &application, id, applicationValidator.Schema.Columns(reqData), references(reqData)...)
	if err != nil {
		return middleware.StoreErrorResponse(c, "Application", "Failed to update application!", err)
	}
	metrics.RecordWrite("application", "update")

	if err := database.Database.Find(c.UserContext(), &application, id, database.WithApplicationRefs); err != nil {
		return middleware.StoreErrorResponse(c, "Application", "Failed to fetch application!", err)
	}
	return c.JSON(responses.Application(application))
}

func DeleteApplication(c *fiber.Ctx) error {
	id := c.Locals(paramsValidator.RecordIDKey).(uint)

	if err := database.Database.Delete(c.UserContext(), &models.SchemeApplication{}, id); err != nil {
		return middleware.StoreErrorResponse(c, "Application", "Failed to delete application!", err)
	}
	metrics.RecordWrite("application", "delete")

	return c.SendStatus(fiber.StatusNoContent)
}
