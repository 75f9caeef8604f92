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

// UpsertResponse stores the full answer set for an assessment. Progress is
// recomputed server-side from the questionnaire's required questions.
func UpsertResponse(resp *models.QuestionnaireResponse) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q, err := GetQuestionnaireByID(resp.QuestionnaireID.Hex())
	if err != nil {
		return errors.New("questionnaire not found")
	}
	resp.ProgressPct = computeProgress(q, resp.Answers)

	now := time.Now()
	filter := bson.M{"assessmentId": resp.AssessmentID}
	update := bson.M{
		"$set": bson.M{
			"questionnaireId": resp.QuestionnaireID,
			"answers":         resp.Answers,
			"progressPct":     resp.ProgressPct,
			"submittedBy":     resp.SubmittedBy,
			"submittedAt":     now,
			"updatedAt":       now,
		},
		"$setOnInsert": bson.M{
			"_id":          primitive.NewObjectID(),
			"assessmentId": resp.AssessmentID,
			"createdAt":    now,
		},
	}

	_, err = database.ResponseCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// PatchAnswers merges a partial answer set into an existing response and
// recomputes progress.
func PatchAnswers(assessmentID string, answers map[string]interface{}, submittedBy primitive.ObjectID) (*models.QuestionnaireResponse, error) {
	objID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return nil, errors.New("invalid assessment ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.QuestionnaireResponse
	err = database.ResponseCollection.FindOne(ctx, bson.M{"assessmentId": objID}).Decode(&existing)
	if err != nil {
		return nil, err
	}

	if existing.Answers == nil {
		existing.Answers = map[string]interface{}{}
	}
	for k, v := range answers {
		if v == nil {
			delete(existing.Answers, k)
			continue
		}
		existing.Answers[k] = v
	}

	q, err := GetQuestionnaireByID(existing.QuestionnaireID.Hex())
	if err != nil {
		return nil, errors.New("questionnaire not found")
	}
	existing.ProgressPct = computeProgress(q, existing.Answers)
	existing.SubmittedBy = submittedBy
	existing.UpdatedAt = time.Now()

	_, err = database.ResponseCollection.UpdateOne(ctx,
		bson.M{"_id": existing.ID},
		bson.M{"$set": bson.M{
			"answers":     existing.Answers,
			"progressPct": existing.ProgressPct,
			"submittedBy": existing.SubmittedBy,
			"updatedAt":   existing.UpdatedAt,
		}},
	)
	if err != nil {
		return nil, err
	}

	return &existing, nil
}

// GetResponseByAssessment returns the response for an assessment.
func GetResponseByAssessment(assessmentID string) (*models.QuestionnaireResponse, error) {
	objID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return nil, errors.New("invalid assessment ID")
	}

	var resp models.QuestionnaireResponse
	err = database.ResponseCollection.FindOne(context.Background(), bson.M{"assessmentId": objID}).Decode(&resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// HasCompleteResponse reports whether the assessment's response answered all
// required questions.
func HasCompleteResponse(assessmentID primitive.ObjectID) (bool, error) {
	var resp models.QuestionnaireResponse
	err := database.ResponseCollection.FindOne(context.Background(), bson.M{"assessmentId": assessmentID}).Decode(&resp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, err
	}
	return resp.ProgressPct >= 100, nil
}

// computeProgress is the share of required questions answered, in percent.
// A questionnaire without required questions counts as complete once any
// answer exists.
func computeProgress(q *models.Questionnaire, answers map[string]interface{}) float64 {
	required := q.RequiredKeys()
	if len(required) == 0 {
		if len(answers) > 0 {
			return 100
		}
		return 0
	}

	answered := 0
	for _, key := range required {
		if v, ok := answers[key]; ok && v != nil && v != "" {
			answered++
		}
	}
	return float64(answered) / float64(len(required)) * 100
}
