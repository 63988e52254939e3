package featureRoutes

import (
	featureController "kisan/controllers/feature"
	featureValidator "kisan/validators/feature"
	paramsValidator "kisan/validators/params"

	"github.com/gofiber/fiber/v2"
)

func SetupFeatureRoutes(router fiber.Router) {
	featureGroup := router.Group("/features")

	featureGroup.Get("/", featureController.ListFeatures)
	featureGroup.Post("/", featureValidator.Feature(), featureController.CreateFeature)
	featureGroup.Get("/:id/", paramsValidator.RecordID("Feature"), featureController.GetFeature)
	featureGroup.Put("/:id/", paramsValidator.RecordID("Feature"), featureValidator.Feature(), featureController.UpdateFeature)
	featureGroup.Patch("/:id/", paramsValidator.RecordID("Feature"), featureValidator.Feature(), featureController.UpdateFeature)
	featureGroup.Delete("/:id/", paramsValidator.RecordID("Feature"), featureController.DeleteFeature)
}
