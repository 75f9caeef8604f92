package controllers

import (
	"encoding/json"
	"strconv"
	"time"

	"Backend-WMS-ROI/src/jobs"
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/services/reports"
	"Backend-WMS-ROI/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GenerateReport godoc
// @Summary      Generate a report snapshot from an assessment
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  models.Report
// @Failure      404  {object}  models.ErrorResponse
// @Router       /reports/generate/{assessmentId} [post]
func GenerateReport(c *fiber.Ctx) error {
	report, err := reports.GenerateReport(c.Params("assessmentId"), localUserID(c))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Assessment not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("report", report.ID.Hex(), models.AuditCreate, localUserID(c), c.IP(),
		fiber.Map{"assessmentId": c.Params("assessmentId")})

	return c.Status(fiber.StatusCreated).JSON(report)
}

// GetAllReports lists reports with pagination.
func GetAllReports(c *fiber.Ctx) error {
	params := parsePagination(c)

	list, total, err := reports.GetAllReports(params, c.Query("companyId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch reports")
	}

	return c.JSON(models.NewPaginatedResponse(list, total, params))
}

// GetReportByID returns one report.
func GetReportByID(c *fiber.Ctx) error {
	report, err := reports.GetReportByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Report not found")
	}
	return c.JSON(report)
}

// UpdateReport applies an edited body as a new version.
func UpdateReport(c *fiber.Ctx) error {
	type UpdateRequest struct {
		Body models.ReportBody `json:"body"`
		Note string            `json:"note"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	report, err := reports.UpdateReportBody(c.Params("id"), localUserID(c), req.Body, req.Note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Report not found")
		}
		if err.Error() == "report is archived" {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("report", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(),
		fiber.Map{"version": report.CurrentVersion})

	return c.JSON(report)
}

// SetReportStatus moves a report between draft, final and archived.
func SetReportStatus(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status string `json:"status"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := reports.SetReportStatus(c.Params("id"), req.Status); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Report not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("report", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(),
		fiber.Map{"status": req.Status})

	return c.JSON(fiber.Map{"message": "Report status updated"})
}

// GetReportVersions godoc
// @Summary      List a report's version history
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.ReportVersion
// @Router       /reports/{id}/versions [get]
func GetReportVersions(c *fiber.Ctx) error {
	versions, err := reports.GetReportVersions(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if versions == nil {
		versions = []models.ReportVersion{}
	}
	return c.JSON(versions)
}

// RestoreReportVersion godoc
// @Summary      Restore an old version as a new one
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Report
// @Failure      404  {object}  models.ErrorResponse
// @Router       /reports/{id}/restore/{version} [post]
func RestoreReportVersion(c *fiber.Ctx) error {
	version, err := strconv.Atoi(c.Params("version"))
	if err != nil || version < 1 {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid version number")
	}

	report, err := reports.RestoreVersion(c.Params("id"), localUserID(c), version)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Report or version not found")
		}
		if err.Error() == "report is archived" {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("report", c.Params("id"), models.AuditRestore, localUserID(c), c.IP(),
		fiber.Map{"restoredVersion": version, "newVersion": report.CurrentVersion})

	return c.JSON(report)
}

// ShareReport issues (or returns) the share token for a report.
func ShareReport(c *fiber.Ctx) error {
	token, err := reports.ShareReport(c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Report not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("report", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(),
		fiber.Map{"shared": true})

	return c.JSON(fiber.Map{"shareToken": token})
}

// RevokeReportShare clears the share token.
func RevokeReportShare(c *fiber.Ctx) error {
	if err := reports.RevokeShare(c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Report not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("report", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(),
		fiber.Map{"shared": false})

	return c.JSON(fiber.Map{"message": "Share link revoked"})
}

// GetSharedReport serves a read-only report through its share token.
// No auth: the token is the credential.
func GetSharedReport(c *fiber.Ctx) error {
	report, err := reports.GetReportByShareToken(c.Params("token"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Report not found")
	}

	// share view exposes the body only, never tokens or export payloads
	return c.JSON(fiber.Map{
		"title":           report.Body.Title,
		"summary":         report.Body.Summary,
		"roi":             report.Body.Roi,
		"recommendations": report.Body.Recommendations,
		"version":         report.CurrentVersion,
		"generatedAt":     report.CreatedAt,
	})
}

// ExportReport enqueues a background export, falling back to a synchronous
// one when the worker is unavailable.
func ExportReport(c *fiber.Ctx) error {
	report, err := reports.GetReportByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Report not found")
	}

	if jobs.EnqueueReportExport(report.ID.Hex(), localUserID(c)) {
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Export queued"})
	}

	// synchronous fallback
	rendered, err := json.Marshal(report.Body)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to render export")
	}

	requestedBy, _ := primitive.ObjectIDFromHex(localUserID(c))
	now := time.Now()
	export := models.ReportExport{
		RequestedBy: requestedBy,
		RequestedAt: now,
		CompletedAt: &now,
		Payload:     string(rendered),
	}
	if err := reports.AppendExport(c.Context(), report.ID, export); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to store export")
	}

	return c.JSON(fiber.Map{"message": "Export completed", "export": export})
}
