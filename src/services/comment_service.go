package services

import (
	"Backend-WMS-ROI/src/database"
	"Backend-WMS-ROI/src/models"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrReplyToReply = errors.New("replies cannot be nested")
var ErrNotCommentAuthor = errors.New("only the author can modify this comment")

// CreateComment inserts a comment or a one-level reply.
func CreateComment(comment *models.Comment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if !comment.ParentID.IsZero() {
		var parent models.Comment
		err := database.CommentCollection.FindOne(ctx, bson.M{"_id": comment.ParentID}).Decode(&parent)
		if err != nil {
			return errors.New("parent comment not found")
		}
		if !parent.ParentID.IsZero() {
			return ErrReplyToReply
		}
	}

	comment.ID = primitive.NewObjectID()
	comment.Edited = false
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt

	_, err := database.CommentCollection.InsertOne(ctx, comment)
	return err
}

// GetCommentsByTarget lists comments for an assessment or report, oldest
// first so threads read top-down.
func GetCommentsByTarget(targetType, targetID string) ([]models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(targetID)
	if err != nil {
		return nil, errors.New("invalid target ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.CommentCollection.Find(ctx,
		bson.M{"targetType": targetType, "targetId": objID},
		options.Find().SetSort(bson.M{"createdAt": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateComment edits the body. Only the author may edit; admin passes
// isAdmin=true to bypass.
func UpdateComment(id, requesterID string, isAdmin bool, body string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid comment ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var comment models.Comment
	if err := database.CommentCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&comment); err != nil {
		return err
	}
	if !isAdmin && comment.AuthorID.Hex() != requesterID {
		return ErrNotCommentAuthor
	}

	_, err = database.CommentCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"body": body, "edited": true, "updatedAt": time.Now()}},
	)
	return err
}

// DeleteComment removes a comment and its direct replies.
func DeleteComment(id, requesterID string, isAdmin bool) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid comment ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var comment models.Comment
	if err := database.CommentCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&comment); err != nil {
		return err
	}
	if !isAdmin && comment.AuthorID.Hex() != requesterID {
		return ErrNotCommentAuthor
	}

	res, err := database.CommentCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	// drop orphaned replies
	_, err = database.CommentCollection.DeleteMany(ctx, bson.M{"parentId": objID})
	return err
}
