package controllers

import (
	"strings"

	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/services/assessments"
	"Backend-WMS-ROI/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateAssessment godoc
// @Summary      Create an assessment for a company
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  models.Assessment
// @Failure      400  {object}  models.ErrorResponse
// @Router       /assessments [post]
func CreateAssessment(c *fiber.Ctx) error {
	var assessment models.Assessment
	if err := c.BodyParser(&assessment); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := validate.Struct(&assessment); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := assessments.CreateAssessment(&assessment); err != nil {
		if err.Error() == "company not found" {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create assessment")
	}

	services.WriteAudit("assessment", assessment.ID.Hex(), models.AuditCreate, localUserID(c), c.IP(), nil)

	return c.Status(fiber.StatusCreated).JSON(assessment)
}

// GetAllAssessments godoc
// @Summary      List assessments with pagination, search, and filters
// @Tags         assessments
// @Produce      json
// @Security     BearerAuth
// @Param        page      query  int     false  "Page number" default(1)
// @Param        limit     query  int     false  "Items per page" default(10)
// @Param        search    query  string  false  "Search title"
// @Param        statuses  query  string  false  "Filter by status (comma separated)"
// @Param        tags      query  string  false  "Filter by tag (comma separated)"
// @Param        companyId query  string  false  "Filter by company"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  models.ErrorResponse
// @Router       /assessments [get]
func GetAllAssessments(c *fiber.Ctx) error {
	params := parsePagination(c)

	statusFilter := strings.Split(c.Query("statuses"), ",")
	tagFilter := strings.Split(c.Query("tags"), ",")
	companyID := c.Query("companyId")

	list, total, totalPages, err := assessments.GetAllAssessments(params, statusFilter, tagFilter, companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch assessments",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": list,
		"meta": fiber.Map{
			"page":       params.Page,
			"limit":      params.Limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// GetAssessmentTags godoc
// @Summary      Aggregate tag usage across non-archived assessments
// @Tags         assessments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.TagCount
// @Router       /assessments/tags [get]
func GetAssessmentTags(c *fiber.Ctx) error {
	counts, err := assessments.GetTagCounts()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to aggregate tags")
	}
	if counts == nil {
		counts = []models.TagCount{}
	}
	return c.JSON(counts)
}

// GetAssessmentByID returns one assessment.
func GetAssessmentByID(c *fiber.Ctx) error {
	assessment, err := assessments.GetAssessmentByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Assessment not found")
	}
	return c.JSON(assessment)
}

// UpdateAssessment edits title, tags, notes, assignment and questionnaire.
func UpdateAssessment(c *fiber.Ctx) error {
	var assessment models.Assessment
	if err := c.BodyParser(&assessment); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := assessments.UpdateAssessment(c.Params("id"), &assessment); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Assessment not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("assessment", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Assessment updated successfully"})
}

// ChangeAssessmentStatus godoc
// @Summary      Move an assessment through its lifecycle
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Assessment
// @Failure      409  {object}  models.ErrorResponse
// @Router       /assessments/{id}/status [patch]
func ChangeAssessmentStatus(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status string `json:"status"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	assessment, err := assessments.ChangeStatus(c.Params("id"), req.Status)
	if err != nil {
		switch err {
		case assessments.ErrInvalidTransition:
			return utils.HandleError(c, fiber.StatusConflict, "Invalid status transition")
		case assessments.ErrIncompleteResponse:
			return utils.HandleError(c, fiber.StatusConflict, "Questionnaire response is not complete")
		case mongo.ErrNoDocuments:
			return utils.HandleError(c, fiber.StatusNotFound, "Assessment not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("assessment", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(),
		fiber.Map{"status": req.Status})

	return c.JSON(assessment)
}

// DeleteAssessment hard-deletes an assessment and its children (admin).
func DeleteAssessment(c *fiber.Ctx) error {
	if err := assessments.DeleteAssessment(c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Assessment not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete assessment")
	}

	services.WriteAudit("assessment", c.Params("id"), models.AuditDelete, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Assessment deleted successfully"})
}
