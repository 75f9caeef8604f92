package routes

import (
	"Backend-WMS-ROI/src/controllers"
	"Backend-WMS-ROI/src/middleware"
	"Backend-WMS-ROI/src/models"

	"github.com/gofiber/fiber/v2"
)

// User management is admin-only.
func userRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Use(middleware.AuthJWT, middleware.RequireRole(models.RoleAdmin))

	users.Post("/", controllers.CreateUser)
	users.Get("/", controllers.GetAllUsers)
	users.Get("/:id", controllers.GetUserByID)
	users.Put("/:id", controllers.UpdateUser)
	users.Patch("/:id/active", controllers.SetUserActive)
	users.Delete("/:id", controllers.DeleteUser)
}
