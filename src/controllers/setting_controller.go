package controllers

import (
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpsertSetting godoc
// @Summary      Write a setting at a scope
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  models.ErrorResponse
// @Router       /settings [put]
func UpsertSetting(c *fiber.Ctx) error {
	var setting models.Setting
	if err := c.BodyParser(&setting); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := validate.Struct(&setting); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	// global settings are admin territory; users can always write their own
	if setting.Scope == models.ScopeGlobal && !isAdmin(c) {
		return utils.HandleError(c, fiber.StatusForbidden, "Global settings require admin")
	}
	if setting.Scope == models.ScopeUser && setting.ScopeID != localUserID(c) && !isAdmin(c) {
		return utils.HandleError(c, fiber.StatusForbidden, "Cannot write another user's settings")
	}

	if updatedBy, err := primitive.ObjectIDFromHex(localUserID(c)); err == nil {
		setting.UpdatedBy = updatedBy
	}

	if err := services.UpsertSetting(&setting); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("setting", setting.Scope+"/"+setting.ScopeID+"/"+setting.Key,
		models.AuditUpdate, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Setting saved"})
}

// ResolveSetting godoc
// @Summary      Resolve a setting key user → company → global
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Param        key        path   string  true   "Setting key"
// @Param        companyId  query  string  false  "Company scope to consider"
// @Success      200  {object}  models.Setting
// @Failure      404  {object}  models.ErrorResponse
// @Router       /settings/resolve/{key} [get]
func ResolveSetting(c *fiber.Ctx) error {
	setting, err := services.ResolveSetting(c.Params("key"), localUserID(c), c.Query("companyId"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Setting not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to resolve setting")
	}
	return c.JSON(setting)
}

// ListSettings lists the settings at one scope.
func ListSettings(c *fiber.Ctx) error {
	scope := c.Query("scope", models.ScopeGlobal)
	scopeID := c.Query("scopeId")

	if scope == models.ScopeUser && scopeID == "" {
		scopeID = localUserID(c)
	}

	settings, err := services.ListSettings(scope, scopeID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if settings == nil {
		settings = []models.Setting{}
	}
	return c.JSON(settings)
}

// DeleteSetting removes a setting at its scope.
func DeleteSetting(c *fiber.Ctx) error {
	scope := c.Query("scope", models.ScopeGlobal)
	scopeID := c.Query("scopeId")

	if scope == models.ScopeGlobal && !isAdmin(c) {
		return utils.HandleError(c, fiber.StatusForbidden, "Global settings require admin")
	}
	if scope == models.ScopeUser && scopeID != localUserID(c) && !isAdmin(c) {
		return utils.HandleError(c, fiber.StatusForbidden, "Cannot delete another user's settings")
	}

	if err := services.DeleteSetting(scope, scopeID, c.Params("key")); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Setting not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete setting")
	}

	services.WriteAudit("setting", scope+"/"+scopeID+"/"+c.Params("key"),
		models.AuditDelete, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Setting deleted"})
}
