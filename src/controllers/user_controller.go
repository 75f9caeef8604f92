package controllers

import (
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/utils"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

var validate = validator.New()

// CreateUser godoc
// @Summary      Create a user account (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  models.User
// @Failure      409  {object}  models.ErrorResponse
// @Router       /users [post]
func CreateUser(c *fiber.Ctx) error {
	type CreateUserRequest struct {
		models.User
		Password string `json:"password" validate:"required,min=8"`
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if err := services.CreateUser(&req.User, req.Password); err != nil {
		if err == services.ErrDuplicateEmail {
			return utils.HandleError(c, fiber.StatusConflict, "Email already in use")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	services.WriteAudit("user", req.User.ID.Hex(), models.AuditCreate, localUserID(c), c.IP(), nil)

	req.User.Password = ""
	return c.Status(fiber.StatusCreated).JSON(req.User)
}

// GetAllUsers godoc
// @Summary      List users with pagination and search (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Items per page" default(10)
// @Param        search query  string  false  "Search name or email"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /users [get]
func GetAllUsers(c *fiber.Ctx) error {
	params := parsePagination(c)

	users, total, err := services.GetAllUsers(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return c.JSON(models.NewPaginatedResponse(users, total, params))
}

// GetUserByID returns one user.
func GetUserByID(c *fiber.Ctx) error {
	user, err := services.GetUserByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "User not found")
	}
	return c.JSON(user)
}

// UpdateUser updates name, email or role.
func UpdateUser(c *fiber.Ctx) error {
	var update models.User
	if err := c.BodyParser(&update); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := services.UpdateUser(c.Params("id"), &update); err != nil {
		switch err {
		case services.ErrDuplicateEmail:
			return utils.HandleError(c, fiber.StatusConflict, "Email already in use")
		case mongo.ErrNoDocuments:
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("user", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "User updated successfully"})
}

// SetUserActive activates or deactivates an account.
func SetUserActive(c *fiber.Ctx) error {
	active, err := strconv.ParseBool(c.Query("active", "true"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid active flag")
	}

	if err := services.SetUserActive(c.Params("id"), active); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	services.WriteAudit("user", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(),
		fiber.Map{"active": active})

	return c.JSON(fiber.Map{"message": "User status updated"})
}

// DeleteUser removes an account.
func DeleteUser(c *fiber.Ctx) error {
	if err := services.DeleteUser(c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	services.WriteAudit("user", c.Params("id"), models.AuditDelete, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// localUserID reads the authenticated user from the JWT middleware context.
func localUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userId").(string)
	return id
}

// parsePagination reads the standard paging query parameters.
func parsePagination(c *fiber.Ctx) models.PaginationParams {
	params := models.DefaultPagination()

	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}

	return params
}
