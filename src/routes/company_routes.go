package routes

import (
	"Backend-WMS-ROI/src/controllers"
	"Backend-WMS-ROI/src/middleware"
	"Backend-WMS-ROI/src/models"

	"github.com/gofiber/fiber/v2"
)

func companyRoutes(router fiber.Router) {
	companies := router.Group("/companies")
	companies.Use(middleware.AuthJWT)

	companies.Get("/", controllers.GetAllCompanies)
	companies.Get("/:id", controllers.GetCompanyByID)

	companies.Post("/", middleware.RequireWriter, controllers.CreateCompany)
	companies.Put("/:id", middleware.RequireWriter, controllers.UpdateCompany)
	companies.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteCompany)
}
