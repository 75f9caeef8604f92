package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TemplateQuestionnaire = "questionnaire"
	TemplateReport        = "report"
)

// Template holds a reusable questionnaire section set or report layout.
// At most one template per kind carries IsDefault.
type Template struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Kind        string             `bson:"kind" json:"kind" validate:"required,oneof=questionnaire report"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description" json:"description"`
	Sections    []Section          `bson:"sections,omitempty" json:"sections,omitempty"`
	Layout      string             `bson:"layout,omitempty" json:"layout,omitempty"`
	IsDefault   bool               `bson:"isDefault" json:"isDefault"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
