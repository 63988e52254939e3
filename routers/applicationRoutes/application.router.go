package applicationRoutes

import (
	applicationController "kisan/controllers/application"
	applicationValidator "kisan/validators/application"
	paramsValidator "kisan/validators/params"

	"github.com/gofiber/fiber/v2"
)

func SetupApplicationRoutes(router fiber.Router) {
	applicationGroup := router.Group("/applications")

	applicationGroup.Get("/", applicationController.ListApplications)
	applicationGroup.Post("/", applicationValidator.Application(), applicationController.CreateApplication)
	applicationGroup.Get("/:id/", paramsValidator.RecordID("Application"), applicationController.GetApplication)
	applicationGroup.Put("/:id/", paramsValidator.RecordID("Application"), applicationValidator.Application(), applicationController.UpdateApplication)
	applicationGroup.Patch("/:id/", paramsValidator.RecordID("Application"), applicationValidator.Application(), applicationController.UpdateApplication)
	applicationGroup.Delete("/:id/", paramsValidator.RecordID("Application"), applicationController.DeleteApplication)
}
