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

// CreateTemplate inserts a template. Marking it default clears the flag on
// the other templates of the same kind.
func CreateTemplate(template *models.Template) error {
	template.ID = primitive.NewObjectID()
	template.CreatedAt = time.Now()
	template.UpdatedAt = template.CreatedAt

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if template.IsDefault {
		if err := clearDefaultTemplate(ctx, template.Kind, template.ID); err != nil {
			return err
		}
	}

	_, err := database.TemplateCollection.InsertOne(ctx, template)
	return err
}

// GetAllTemplates lists templates, optionally filtered by kind.
func GetAllTemplates(kind string) ([]models.Template, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}

	cursor, err := database.TemplateCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []models.Template
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplateByID returns one template.
func GetTemplateByID(id string) (*models.Template, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid template ID")
	}

	var template models.Template
	err = database.TemplateCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&template)
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// UpdateTemplate replaces the mutable fields.
func UpdateTemplate(id string, template *models.Template) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid template ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if template.IsDefault {
		if err := clearDefaultTemplate(ctx, template.Kind, objID); err != nil {
			return err
		}
	}

	update := bson.M{"$set": bson.M{
		"name":        template.Name,
		"description": template.Description,
		"sections":    template.Sections,
		"layout":      template.Layout,
		"isDefault":   template.IsDefault,
		"updatedAt":   time.Now(),
	}}

	res, err := database.TemplateCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteTemplate removes a template.
func DeleteTemplate(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid template ID")
	}

	res, err := database.TemplateCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func clearDefaultTemplate(ctx context.Context, kind string, except primitive.ObjectID) error {
	_, err := database.TemplateCollection.UpdateMany(ctx,
		bson.M{"kind": kind, "isDefault": true, "_id": bson.M{"$ne": except}},
		bson.M{"$set": bson.M{"isDefault": false, "updatedAt": time.Now()}},
	)
	return err
}
