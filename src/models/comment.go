package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CommentTargetAssessment = "assessment"
	CommentTargetReport     = "report"
)

// Comment supports one level of threading: a reply's ParentID points at a
// top-level comment, never at another reply.
type Comment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TargetType string             `bson:"targetType" json:"targetType" validate:"required,oneof=assessment report"`
	TargetID   primitive.ObjectID `bson:"targetId" json:"targetId" validate:"required"`
	AuthorID   primitive.ObjectID `bson:"authorId" json:"authorId"`
	Body       string             `bson:"body" json:"body" validate:"required"`
	ParentID   primitive.ObjectID `bson:"parentId,omitempty" json:"parentId,omitempty"`
	Edited     bool               `bson:"edited" json:"edited"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
