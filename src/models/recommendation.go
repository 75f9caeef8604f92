package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// PriorityRank orders priorities for sorting, high first. Unknown values
// sort last.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

type Recommendation struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AssessmentID     primitive.ObjectID `bson:"assessmentId" json:"assessmentId" validate:"required"`
	Title            string             `bson:"title" json:"title" validate:"required"`
	Body             string             `bson:"body" json:"body"`
	Category         string             `bson:"category" json:"category"`
	Priority         string             `bson:"priority" json:"priority" validate:"omitempty,oneof=low medium high"`
	EstimatedSavings float64            `bson:"estimatedSavings" json:"estimatedSavings"`
	Accepted         bool               `bson:"accepted" json:"accepted"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
