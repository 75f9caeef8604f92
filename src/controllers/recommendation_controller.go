package controllers

import (
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateRecommendation adds a recommendation to an assessment.
func CreateRecommendation(c *fiber.Ctx) error {
	assessmentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid assessment ID")
	}

	var rec models.Recommendation
	if err := c.BodyParser(&rec); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	rec.AssessmentID = assessmentID

	if err := validate.Struct(&rec); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := services.CreateRecommendation(&rec); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create recommendation")
	}

	services.WriteAudit("recommendation", rec.ID.Hex(), models.AuditCreate, localUserID(c), c.IP(), nil)

	return c.Status(fiber.StatusCreated).JSON(rec)
}

// GetRecommendationsByAssessment lists an assessment's recommendations.
func GetRecommendationsByAssessment(c *fiber.Ctx) error {
	recs, err := services.GetRecommendationsByAssessment(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch recommendations")
	}
	if recs == nil {
		recs = []models.Recommendation{}
	}
	return c.JSON(recs)
}

// UpdateRecommendation edits a recommendation.
func UpdateRecommendation(c *fiber.Ctx) error {
	var rec models.Recommendation
	if err := c.BodyParser(&rec); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := services.UpdateRecommendation(c.Params("recId"), &rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Recommendation not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("recommendation", c.Params("recId"), models.AuditUpdate, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Recommendation updated successfully"})
}

// SetRecommendationAccepted flips the accepted flag.
func SetRecommendationAccepted(c *fiber.Ctx) error {
	type AcceptRequest struct {
		Accepted bool `json:"accepted"`
	}

	var req AcceptRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := services.SetRecommendationAccepted(c.Params("recId"), req.Accepted); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Recommendation not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("recommendation", c.Params("recId"), models.AuditUpdate, localUserID(c), c.IP(),
		fiber.Map{"accepted": req.Accepted})

	return c.JSON(fiber.Map{"message": "Recommendation updated"})
}

// DeleteRecommendation removes a recommendation.
func DeleteRecommendation(c *fiber.Ctx) error {
	if err := services.DeleteRecommendation(c.Params("recId")); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Recommendation not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete recommendation")
	}

	services.WriteAudit("recommendation", c.Params("recId"), models.AuditDelete, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Recommendation deleted successfully"})
}
