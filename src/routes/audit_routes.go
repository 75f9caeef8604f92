package routes

import (
	"Backend-WMS-ROI/src/controllers"
	"Backend-WMS-ROI/src/middleware"
	"Backend-WMS-ROI/src/models"

	"github.com/gofiber/fiber/v2"
)

func auditRoutes(router fiber.Router) {
	audit := router.Group("/audit-logs")
	audit.Use(middleware.AuthJWT, middleware.RequireRole(models.RoleAdmin))

	audit.Get("/", controllers.GetAuditLogs)
}
