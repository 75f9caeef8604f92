package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionnaireResponse holds the answers captured during an assessment
// session. Answers are keyed by question key; values come straight from the
// client form (string, number or bool).
type QuestionnaireResponse struct {
	ID              primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	AssessmentID    primitive.ObjectID     `bson:"assessmentId" json:"assessmentId" validate:"required"`
	QuestionnaireID primitive.ObjectID     `bson:"questionnaireId" json:"questionnaireId" validate:"required"`
	Answers         map[string]interface{} `bson:"answers" json:"answers"`
	ProgressPct     float64                `bson:"progressPct" json:"progressPct"`
	SubmittedBy     primitive.ObjectID     `bson:"submittedBy,omitempty" json:"submittedBy,omitempty"`
	SubmittedAt     *time.Time             `bson:"submittedAt,omitempty" json:"submittedAt,omitempty"`
	CreatedAt       time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time              `bson:"updatedAt" json:"updatedAt"`
}
