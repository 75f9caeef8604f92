package services

import (
	"Backend-WMS-ROI/src/database"
	"Backend-WMS-ROI/src/models"
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateRecommendation inserts a recommendation under an assessment.
func CreateRecommendation(rec *models.Recommendation) error {
	rec.ID = primitive.NewObjectID()
	if rec.Priority == "" {
		rec.Priority = models.PriorityMedium
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt

	_, err := database.RecommendationCollection.InsertOne(context.Background(), rec)
	return err
}

// GetRecommendationsByAssessment lists an assessment's recommendations,
// high priority first.
func GetRecommendationsByAssessment(assessmentID string) ([]models.Recommendation, error) {
	objID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return nil, errors.New("invalid assessment ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.RecommendationCollection.Find(ctx, bson.M{"assessmentId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []models.Recommendation
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}

	sortByPriority(recs)
	return recs, nil
}

// sortByPriority orders recommendations high priority first, keeping
// insertion order within a priority.
func sortByPriority(recs []models.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return models.PriorityRank(recs[i].Priority) < models.PriorityRank(recs[j].Priority)
	})
}

// GetAcceptedRecommendations returns only the accepted ones, for report
// generation.
func GetAcceptedRecommendations(assessmentID primitive.ObjectID) ([]models.Recommendation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.RecommendationCollection.Find(ctx, bson.M{
		"assessmentId": assessmentID,
		"accepted":     true,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []models.Recommendation
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// UpdateRecommendation replaces the mutable fields.
func UpdateRecommendation(id string, rec *models.Recommendation) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid recommendation ID")
	}

	update := bson.M{"$set": bson.M{
		"title":            rec.Title,
		"body":             rec.Body,
		"category":         rec.Category,
		"priority":         rec.Priority,
		"estimatedSavings": rec.EstimatedSavings,
		"updatedAt":        time.Now(),
	}}

	res, err := database.RecommendationCollection.UpdateOne(context.Background(), bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetRecommendationAccepted flips the accepted flag.
func SetRecommendationAccepted(id string, accepted bool) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid recommendation ID")
	}

	res, err := database.RecommendationCollection.UpdateOne(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"accepted": accepted, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteRecommendation removes one recommendation.
func DeleteRecommendation(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid recommendation ID")
	}

	res, err := database.RecommendationCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
