package controllers

import (
	"time"

	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAuditLogs godoc
// @Summary      Query the audit trail (admin)
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        page        query  int     false  "Page number" default(1)
// @Param        limit       query  int     false  "Items per page" default(10)
// @Param        entity      query  string  false  "Filter by entity"
// @Param        action      query  string  false  "Filter by action"
// @Param        performedBy query  string  false  "Filter by performer"
// @Param        from        query  string  false  "RFC3339 lower bound"
// @Param        to          query  string  false  "RFC3339 upper bound"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /audit-logs [get]
func GetAuditLogs(c *fiber.Ctx) error {
	params := parsePagination(c)

	filter := services.AuditFilter{
		Entity:      c.Query("entity"),
		Action:      c.Query("action"),
		PerformedBy: c.Query("performedBy"),
	}

	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "from must be RFC3339")
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "to must be RFC3339")
		}
		filter.To = &t
	}

	logs, total, err := services.GetAuditLogs(params, filter)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch audit logs")
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	return c.JSON(models.NewPaginatedResponse(logs, total, params))
}
