package controllers

import (
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpsertResponse godoc
// @Summary      Store the full answer set for an assessment
// @Tags         responses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.QuestionnaireResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /assessments/{id}/response [put]
func UpsertResponse(c *fiber.Ctx) error {
	assessmentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid assessment ID")
	}

	var resp models.QuestionnaireResponse
	if err := c.BodyParser(&resp); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	resp.AssessmentID = assessmentID

	if resp.QuestionnaireID.IsZero() {
		return utils.HandleError(c, fiber.StatusBadRequest, "questionnaireId is required")
	}

	if submitter, err := primitive.ObjectIDFromHex(localUserID(c)); err == nil {
		resp.SubmittedBy = submitter
	}

	if err := services.UpsertResponse(&resp); err != nil {
		if err.Error() == "questionnaire not found" {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save response")
	}

	services.WriteAudit("response", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(), nil)

	return c.JSON(resp)
}

// PatchAnswers merges a partial answer set into the stored response.
func PatchAnswers(c *fiber.Ctx) error {
	type PatchRequest struct {
		Answers map[string]interface{} `json:"answers"`
	}

	var req PatchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if len(req.Answers) == 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "answers is required")
	}

	submitter, _ := primitive.ObjectIDFromHex(localUserID(c))
	resp, err := services.PatchAnswers(c.Params("id"), req.Answers, submitter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Response not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("response", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(),
		fiber.Map{"patchedKeys": len(req.Answers)})

	return c.JSON(resp)
}

// GetResponseByAssessment returns the stored response for an assessment.
func GetResponseByAssessment(c *fiber.Ctx) error {
	resp, err := services.GetResponseByAssessment(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Response not found")
	}
	return c.JSON(resp)
}
