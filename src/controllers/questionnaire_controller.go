package controllers

import (
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateQuestionnaire creates a questionnaire with its sections.
func CreateQuestionnaire(c *fiber.Ctx) error {
	var q models.Questionnaire
	if err := c.BodyParser(&q); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := validate.Struct(&q); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := services.CreateQuestionnaire(&q); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create questionnaire")
	}

	services.WriteAudit("questionnaire", q.ID.Hex(), models.AuditCreate, localUserID(c), c.IP(), nil)

	return c.Status(fiber.StatusCreated).JSON(q)
}

// CreateQuestionnaireFromTemplate godoc
// @Summary      Clone a questionnaire template into a new questionnaire
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  models.Questionnaire
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/from-template/{templateId} [post]
func CreateQuestionnaireFromTemplate(c *fiber.Ctx) error {
	type CloneRequest struct {
		Title string `json:"title"`
	}
	var req CloneRequest
	_ = c.BodyParser(&req) // title is optional

	q, err := services.CreateQuestionnaireFromTemplate(c.Params("templateId"), req.Title)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Template not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("questionnaire", q.ID.Hex(), models.AuditCreate, localUserID(c), c.IP(),
		fiber.Map{"fromTemplate": c.Params("templateId")})

	return c.Status(fiber.StatusCreated).JSON(q)
}

// GetAllQuestionnaires lists questionnaires.
func GetAllQuestionnaires(c *fiber.Ctx) error {
	questionnaires, err := services.GetAllQuestionnaires()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch questionnaires")
	}
	return c.JSON(questionnaires)
}

// GetQuestionnaireByID returns one questionnaire.
func GetQuestionnaireByID(c *fiber.Ctx) error {
	q, err := services.GetQuestionnaireByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Questionnaire not found")
	}
	return c.JSON(q)
}

// UpdateQuestionnaire replaces sections and metadata.
func UpdateQuestionnaire(c *fiber.Ctx) error {
	var q models.Questionnaire
	if err := c.BodyParser(&q); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := services.UpdateQuestionnaire(c.Params("id"), &q); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Questionnaire not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("questionnaire", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Questionnaire updated successfully"})
}

// DeleteQuestionnaire removes an unused questionnaire.
func DeleteQuestionnaire(c *fiber.Ctx) error {
	err := services.DeleteQuestionnaire(c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Questionnaire not found")
		}
		if err.Error() == "questionnaire is in use by assessments" {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete questionnaire")
	}

	services.WriteAudit("questionnaire", c.Params("id"), models.AuditDelete, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Questionnaire deleted successfully"})
}
