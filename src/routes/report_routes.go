package routes

import (
	"Backend-WMS-ROI/src/controllers"
	"Backend-WMS-ROI/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func reportRoutes(router fiber.Router) {
	reports := router.Group("/reports")
	reports.Use(middleware.AuthJWT)

	reports.Get("/", controllers.GetAllReports)
	reports.Get("/:id", controllers.GetReportByID)
	reports.Get("/:id/versions", controllers.GetReportVersions)

	reports.Post("/generate/:assessmentId", middleware.RequireWriter, controllers.GenerateReport)
	reports.Put("/:id", middleware.RequireWriter, controllers.UpdateReport)
	reports.Patch("/:id/status", middleware.RequireWriter, controllers.SetReportStatus)
	reports.Post("/:id/restore/:version", middleware.RequireWriter, controllers.RestoreReportVersion)
	reports.Post("/:id/share", middleware.RequireWriter, controllers.ShareReport)
	reports.Delete("/:id/share", middleware.RequireWriter, controllers.RevokeReportShare)
	reports.Post("/:id/export", middleware.RequireWriter, controllers.ExportReport)
}
