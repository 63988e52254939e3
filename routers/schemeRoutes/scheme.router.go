package schemeRoutes

import (
	schemeController "kisan/controllers/scheme"
	paramsValidator "kisan/validators/params"
	schemeValidator "kisan/validators/scheme"

	"github.com/gofiber/fiber/v2"
)

func SetupSchemeRoutes(router fiber.Router) {
	schemeGroup := router.Group("/schemes")

	schemeGroup.Get("/", schemeController.ListSchemes)
	schemeGroup.Post("/", schemeValidator.Scheme(), schemeController.CreateScheme)
	schemeGroup.Get("/:id/", paramsValidator.RecordID("Scheme"), schemeController.GetScheme)
	schemeGroup.Put("/:id/", paramsValidator.RecordID("Scheme"), schemeValidator.Scheme(), schemeController.UpdateScheme)
	schemeGroup.Patch("/:id/", paramsValidator.RecordID("Scheme"), schemeValidator.Scheme(), schemeController.UpdateScheme)
	schemeGroup.Delete("/:id/", paramsValidator.RecordID("Scheme"), schemeController.DeleteScheme)
}
