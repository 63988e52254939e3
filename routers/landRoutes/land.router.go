package landRoutes

import (
	landController "kisan/controllers/land"
	landValidator "kisan/validators/land"
	paramsValidator "kisan/validators/params"

	"github.com/gofiber/fiber/v2"
)

func SetupLandRoutes(router fiber.Router) {
	landGroup := router.Group("/lands")

	landGroup.Get("/", landController.ListLands)
	landGroup.Post("/", landValidator.Land(), landController.CreateLand)
	landGroup.Get("/:id/", paramsValidator.RecordID("Land"), landController.GetLand)
	landGroup.Put("/:id/", paramsValidator.RecordID("Land"), landValidator.Land(), landController.UpdateLand)
	landGroup.Patch("/:id/", paramsValidator.RecordID("Land"), landValidator.Land(), landController.UpdateLand)
	landGroup.Delete("/:id/", paramsValidator.RecordID("Land"), landController.DeleteLand)
}
