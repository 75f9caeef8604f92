package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assessment lifecycle states.
const (
	AssessmentDraft      = "draft"
	AssessmentInProgress = "in_progress"
	AssessmentCompleted  = "completed"
	AssessmentArchived   = "archived"
)

type Assessment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CompanyID       primitive.ObjectID `bson:"companyId" json:"companyId" validate:"required"`
	Title           string             `bson:"title" json:"title" validate:"required"`
	Status          string             `bson:"status" json:"status"`
	AssignedTo      primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	Tags            []string           `bson:"tags" json:"tags"`
	QuestionnaireID primitive.ObjectID `bson:"questionnaireId,omitempty" json:"questionnaireId,omitempty"`
	Notes           string             `bson:"notes" json:"notes"`
	CompletedAt     *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TagCount is the aggregation row for the tag summary endpoint.
type TagCount struct {
	Tag   string `bson:"_id" json:"tag"`
	Count int64  `bson:"count" json:"count"`
}

// CanTransition checks the allowed status moves:
// draft → in_progress → completed, and anything → archived.
func CanTransition(from, to string) bool {
	if to == AssessmentArchived {
		return from != AssessmentArchived
	}
	switch from {
	case AssessmentDraft:
		return to == AssessmentInProgress
	case AssessmentInProgress:
		return to == AssessmentCompleted
	}
	return false
}
