package routes

import (
	"Backend-WMS-ROI/src/controllers"
	"Backend-WMS-ROI/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func settingRoutes(router fiber.Router) {
	settings := router.Group("/settings")
	settings.Use(middleware.AuthJWT)

	settings.Get("/", controllers.ListSettings)
	settings.Get("/resolve/:key", controllers.ResolveSetting)

	// scope-level authorization happens in the controller
	settings.Put("/", middleware.RequireWriter, controllers.UpsertSetting)
	settings.Delete("/:key", middleware.RequireWriter, controllers.DeleteSetting)
}
