package controllers

import (
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateTemplate creates a questionnaire or report template.
func CreateTemplate(c *fiber.Ctx) error {
	var template models.Template
	if err := c.BodyParser(&template); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := validate.Struct(&template); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := services.CreateTemplate(&template); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create template")
	}

	services.WriteAudit("template", template.ID.Hex(), models.AuditCreate, localUserID(c), c.IP(), nil)

	return c.Status(fiber.StatusCreated).JSON(template)
}

// GetAllTemplates lists templates, optionally by kind.
func GetAllTemplates(c *fiber.Ctx) error {
	kind := c.Query("kind")
	if kind != "" && kind != models.TemplateQuestionnaire && kind != models.TemplateReport {
		return utils.HandleError(c, fiber.StatusBadRequest, "kind must be questionnaire or report")
	}

	templates, err := services.GetAllTemplates(kind)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch templates")
	}
	if templates == nil {
		templates = []models.Template{}
	}
	return c.JSON(templates)
}

// GetTemplateByID returns one template.
func GetTemplateByID(c *fiber.Ctx) error {
	template, err := services.GetTemplateByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Template not found")
	}
	return c.JSON(template)
}

// UpdateTemplate edits a template.
func UpdateTemplate(c *fiber.Ctx) error {
	var template models.Template
	if err := c.BodyParser(&template); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := services.UpdateTemplate(c.Params("id"), &template); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Template not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("template", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Template updated successfully"})
}

// DeleteTemplate removes a template.
func DeleteTemplate(c *fiber.Ctx) error {
	if err := services.DeleteTemplate(c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Template not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete template")
	}

	services.WriteAudit("template", c.Params("id"), models.AuditDelete, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Template deleted successfully"})
}
