package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question input types rendered by the front-end.
const (
	QuestionNumber  = "number"
	QuestionText    = "text"
	QuestionSelect  = "select"
	QuestionBoolean = "boolean"
)

type Question struct {
	Key      string   `bson:"key" json:"key" validate:"required"`
	Label    string   `bson:"label" json:"label" validate:"required"`
	Type     string   `bson:"type" json:"type" validate:"required,oneof=number text select boolean"`
	Options  []string `bson:"options,omitempty" json:"options,omitempty"`
	Required bool     `bson:"required" json:"required"`
	HelpText string   `bson:"helpText,omitempty" json:"helpText,omitempty"`
}

type Section struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Sequence  int                `bson:"sequence" json:"sequence"`
	Questions []Question         `bson:"questions" json:"questions"`
}

type Questionnaire struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title             string             `bson:"title" json:"title" validate:"required"`
	Description       string             `bson:"description" json:"description"`
	Version           int                `bson:"version" json:"version"`
	IsTemplateDerived bool               `bson:"isTemplateDerived" json:"isTemplateDerived"`
	Sections          []Section          `bson:"sections" json:"sections"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RequiredKeys lists the keys of all required questions.
func (q *Questionnaire) RequiredKeys() []string {
	var keys []string
	for _, s := range q.Sections {
		for _, question := range s.Questions {
			if question.Required {
				keys = append(keys, question.Key)
			}
		}
	}
	return keys
}
