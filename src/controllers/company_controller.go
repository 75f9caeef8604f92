package controllers

import (
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateCompany godoc
// @Summary      Create a prospect company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  models.Company
// @Failure      400  {object}  models.ErrorResponse
// @Router       /companies [post]
func CreateCompany(c *fiber.Ctx) error {
	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := validate.Struct(&company); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if ownerID, err := primitive.ObjectIDFromHex(localUserID(c)); err == nil {
		company.OwnerID = ownerID
	}

	if err := services.CreateCompany(&company); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create company")
	}

	services.WriteAudit("company", company.ID.Hex(), models.AuditCreate, localUserID(c), c.IP(), nil)

	return c.Status(fiber.StatusCreated).JSON(company)
}

// GetAllCompanies godoc
// @Summary      List companies with pagination, search, and sorting
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Items per page" default(10)
// @Param        search query  string  false  "Search name or industry"
// @Param        sortBy query  string  false  "Field to sort by" default(name)
// @Param        order  query  string  false  "Sort order (asc or desc)" default(asc)
// @Success      200  {object}  models.PaginatedResponse
// @Router       /companies [get]
func GetAllCompanies(c *fiber.Ctx) error {
	params := parsePagination(c)

	companies, total, err := services.GetAllCompanies(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch companies")
	}

	return c.JSON(models.NewPaginatedResponse(companies, total, params))
}

// GetCompanyByID returns one company.
func GetCompanyByID(c *fiber.Ctx) error {
	company, err := services.GetCompanyByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Company not found")
	}
	return c.JSON(company)
}

// UpdateCompany replaces the company profile.
func UpdateCompany(c *fiber.Ctx) error {
	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := validate.Struct(&company); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := services.UpdateCompany(c.Params("id"), &company); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Company not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update company")
	}

	services.WriteAudit("company", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Company updated successfully"})
}

// DeleteCompany removes a company without active assessments.
func DeleteCompany(c *fiber.Ctx) error {
	err := services.DeleteCompany(c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Company not found")
		}
		if err.Error() == "company has active assessments" {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete company")
	}

	services.WriteAudit("company", c.Params("id"), models.AuditDelete, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Company deleted successfully"})
}
