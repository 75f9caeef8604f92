package routes

import (
	"Backend-WMS-ROI/src/controllers"
	"Backend-WMS-ROI/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func templateRoutes(router fiber.Router) {
	templates := router.Group("/templates")
	templates.Use(middleware.AuthJWT)

	templates.Get("/", controllers.GetAllTemplates)
	templates.Get("/:id", controllers.GetTemplateByID)

	templates.Post("/", middleware.RequireWriter, controllers.CreateTemplate)
	templates.Put("/:id", middleware.RequireWriter, controllers.UpdateTemplate)
	templates.Delete("/:id", middleware.RequireWriter, controllers.DeleteTemplate)
}
