package routes

import (
	"Backend-WMS-ROI/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	authRoutes(api)
	userRoutes(api)
	companyRoutes(api)
	assessmentRoutes(api)
	questionnaireRoutes(api)
	reportRoutes(api)
	commentRoutes(api)
	settingRoutes(api)
	templateRoutes(api)
	auditRoutes(api)

	// shared report links are public, token is the credential
	api.Get("/shared/reports/:token", controllers.GetSharedReport)

	// health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
