package routes

import (
	"Backend-WMS-ROI/src/controllers"
	"Backend-WMS-ROI/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func commentRoutes(router fiber.Router) {
	comments := router.Group("/comments")
	comments.Use(middleware.AuthJWT)

	comments.Get("/", controllers.GetComments)

	comments.Post("/", middleware.RequireWriter, controllers.CreateComment)
	comments.Put("/:id", middleware.RequireWriter, controllers.UpdateComment)
	comments.Delete("/:id", middleware.RequireWriter, controllers.DeleteComment)
}
