package routes

import (
	"Backend-WMS-ROI/src/controllers"
	"Backend-WMS-ROI/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")

	auth.Post("/login", controllers.LoginUser)
	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
	auth.Get("/me", middleware.AuthJWT, controllers.Me)
}
