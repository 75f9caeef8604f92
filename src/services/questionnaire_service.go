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
)

// CreateQuestionnaire inserts a questionnaire at version 1, stamping
// section IDs.
func CreateQuestionnaire(q *models.Questionnaire) error {
	q.ID = primitive.NewObjectID()
	q.Version = 1
	q.CreatedAt = time.Now()
	q.UpdatedAt = q.CreatedAt
	for i := range q.Sections {
		if q.Sections[i].ID.IsZero() {
			q.Sections[i].ID = primitive.NewObjectID()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := database.QuestionnaireCollection.InsertOne(ctx, q)
	return err
}

// CreateQuestionnaireFromTemplate clones a questionnaire template's sections
// into a new questionnaire.
func CreateQuestionnaireFromTemplate(templateID, title string) (*models.Questionnaire, error) {
	template, err := GetTemplateByID(templateID)
	if err != nil {
		return nil, err
	}
	if template.Kind != models.TemplateQuestionnaire {
		return nil, errors.New("template is not a questionnaire template")
	}

	q := &models.Questionnaire{
		Title:             title,
		Description:       template.Description,
		IsTemplateDerived: true,
		Sections:          template.Sections,
	}
	if q.Title == "" {
		q.Title = template.Name
	}
	// fresh section IDs so the clone does not alias the template
	for i := range q.Sections {
		q.Sections[i].ID = primitive.NewObjectID()
	}

	if err := CreateQuestionnaire(q); err != nil {
		return nil, err
	}
	return q, nil
}

// GetAllQuestionnaires lists all questionnaires without sections (summary view).
func GetAllQuestionnaires() ([]models.Questionnaire, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.QuestionnaireCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questionnaires []models.Questionnaire
	if err := cursor.All(ctx, &questionnaires); err != nil {
		return nil, err
	}
	return questionnaires, nil
}

// GetQuestionnaireByID returns one questionnaire with sections.
func GetQuestionnaireByID(id string) (*models.Questionnaire, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid questionnaire ID")
	}

	var q models.Questionnaire
	err = database.QuestionnaireCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&q)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// UpdateQuestionnaire replaces sections and metadata, bumping the version.
func UpdateQuestionnaire(id string, q *models.Questionnaire) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid questionnaire ID")
	}

	for i := range q.Sections {
		if q.Sections[i].ID.IsZero() {
			q.Sections[i].ID = primitive.NewObjectID()
		}
	}

	update := bson.M{
		"$set": bson.M{
			"title":       q.Title,
			"description": q.Description,
			"sections":    q.Sections,
			"updatedAt":   time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}

	res, err := database.QuestionnaireCollection.UpdateOne(context.Background(), bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteQuestionnaire removes a questionnaire unless an assessment uses it.
func DeleteQuestionnaire(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid questionnaire ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := database.AssessmentCollection.CountDocuments(ctx, bson.M{"questionnaireId": objID})
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("questionnaire is in use by assessments")
	}

	res, err := database.QuestionnaireCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
