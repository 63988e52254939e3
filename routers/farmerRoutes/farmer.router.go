package farmerRoutes

import (
	farmerController "kisan/controllers/farmer"
	farmerValidator "kisan/validators/farmer"
	paramsValidator "kisan/validators/params"

	"github.com/gofiber/fiber/v2"
)

func SetupFarmerRoutes(router fiber.Router) {
	farmerGroup := router.Group("/farmers")

	farmerGroup.Get("/", farmerController.ListFarmers)
	farmerGroup.Post("/", farmerValidator.Farmer(), farmerController.CreateFarmer)
	farmerGroup.Get("/:id/", paramsValidator.RecordID("Farmer"), farmerController.GetFarmer)
	farmerGroup.Put("/:id/", paramsValidator.RecordID("Farmer"), farmerValidator.Farmer(), farmerController.UpdateFarmer)
	farmerGroup.Patch("/:id/", paramsValidator.RecordID("Farmer"), farmerValidator.Farmer(), farmerController.UpdateFarmer)
	farmerGroup.Delete("/:id/", paramsValidator.RecordID("Farmer"), farmerController.DeleteFarmer)
}
