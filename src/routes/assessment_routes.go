package routes

import (
	"Backend-WMS-ROI/src/controllers"
	"Backend-WMS-ROI/src/middleware"
	"Backend-WMS-ROI/src/models"

	"github.com/gofiber/fiber/v2"
)

// Assessment routes carry the response and recommendation sub-resources.
func assessmentRoutes(router fiber.Router) {
	assessments := router.Group("/assessments")
	assessments.Use(middleware.AuthJWT)

	assessments.Get("/", controllers.GetAllAssessments)
	assessments.Get("/tags", controllers.GetAssessmentTags)
	assessments.Get("/:id", controllers.GetAssessmentByID)
	assessments.Get("/:id/response", controllers.GetResponseByAssessment)
	assessments.Get("/:id/recommendations", controllers.GetRecommendationsByAssessment)

	assessments.Post("/", middleware.RequireWriter, controllers.CreateAssessment)
	assessments.Put("/:id", middleware.RequireWriter, controllers.UpdateAssessment)
	assessments.Patch("/:id/status", middleware.RequireWriter, controllers.ChangeAssessmentStatus)
	assessments.Put("/:id/response", middleware.RequireWriter, controllers.UpsertResponse)
	assessments.Patch("/:id/response", middleware.RequireWriter, controllers.PatchAnswers)

	assessments.Post("/:id/recommendations", middleware.RequireWriter, controllers.CreateRecommendation)
	assessments.Put("/:id/recommendations/:recId", middleware.RequireWriter, controllers.UpdateRecommendation)
	assessments.Patch("/:id/recommendations/:recId/accept", middleware.RequireWriter, controllers.SetRecommendationAccepted)
	assessments.Delete("/:id/recommendations/:recId", middleware.RequireWriter, controllers.DeleteRecommendation)

	assessments.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteAssessment)
}
