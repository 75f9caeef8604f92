package routes

import (
	"Backend-WMS-ROI/src/controllers"
	"Backend-WMS-ROI/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func questionnaireRoutes(router fiber.Router) {
	questionnaires := router.Group("/questionnaires")
	questionnaires.Use(middleware.AuthJWT)

	questionnaires.Get("/", controllers.GetAllQuestionnaires)
	questionnaires.Get("/:id", controllers.GetQuestionnaireByID)

	questionnaires.Post("/", middleware.RequireWriter, controllers.CreateQuestionnaire)
	questionnaires.Post("/from-template/:templateId", middleware.RequireWriter, controllers.CreateQuestionnaireFromTemplate)
	questionnaires.Put("/:id", middleware.RequireWriter, controllers.UpdateQuestionnaire)
	questionnaires.Delete("/:id", middleware.RequireWriter, controllers.DeleteQuestionnaire)
}
