package controllers

import (
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func isAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("role").(string)
	return role == models.RoleAdmin
}

// CreateComment posts a comment or a one-level reply.
func CreateComment(c *fiber.Ctx) error {
	var comment models.Comment
	if err := c.BodyParser(&comment); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := validate.Struct(&comment); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	if author, err := primitive.ObjectIDFromHex(localUserID(c)); err == nil {
		comment.AuthorID = author
	}

	if err := services.CreateComment(&comment); err != nil {
		if err == services.ErrReplyToReply {
			return utils.HandleError(c, fiber.StatusBadRequest, "Replies cannot be nested")
		}
		if err.Error() == "parent comment not found" {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create comment")
	}

	services.WriteAudit("comment", comment.ID.Hex(), models.AuditCreate, localUserID(c), c.IP(), nil)

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments lists the comments on an assessment or report.
func GetComments(c *fiber.Ctx) error {
	targetType := c.Query("targetType")
	if targetType != models.CommentTargetAssessment && targetType != models.CommentTargetReport {
		return utils.HandleError(c, fiber.StatusBadRequest, "targetType must be assessment or report")
	}

	comments, err := services.GetCommentsByTarget(targetType, c.Query("targetId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return c.JSON(comments)
}

// UpdateComment edits a comment body (author or admin).
func UpdateComment(c *fiber.Ctx) error {
	type EditRequest struct {
		Body string `json:"body"`
	}

	var req EditRequest
	if err := c.BodyParser(&req); err != nil || req.Body == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "body is required")
	}

	err := services.UpdateComment(c.Params("id"), localUserID(c), isAdmin(c), req.Body)
	if err != nil {
		switch err {
		case services.ErrNotCommentAuthor:
			return utils.HandleError(c, fiber.StatusForbidden, "Only the author can edit this comment")
		case mongo.ErrNoDocuments:
			return utils.HandleError(c, fiber.StatusNotFound, "Comment not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("comment", c.Params("id"), models.AuditUpdate, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Comment updated successfully"})
}

// DeleteComment removes a comment and its replies (author or admin).
func DeleteComment(c *fiber.Ctx) error {
	err := services.DeleteComment(c.Params("id"), localUserID(c), isAdmin(c))
	if err != nil {
		switch err {
		case services.ErrNotCommentAuthor:
			return utils.HandleError(c, fiber.StatusForbidden, "Only the author can delete this comment")
		case mongo.ErrNoDocuments:
			return utils.HandleError(c, fiber.StatusNotFound, "Comment not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	services.WriteAudit("comment", c.Params("id"), models.AuditDelete, localUserID(c), c.IP(), nil)

	return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
}
