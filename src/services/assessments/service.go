package assessments

import (
	"Backend-WMS-ROI/src/database"
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrIncompleteResponse = errors.New("assessment response is not complete")

// CreateAssessment inserts a new assessment in draft.
func CreateAssessment(a *models.Assessment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// company must exist
	count, err := database.CompanyCollection.CountDocuments(ctx, bson.M{"_id": a.CompanyID})
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.New("company not found")
	}

	a.ID = primitive.NewObjectID()
	a.Status = models.AssessmentDraft
	if a.Tags == nil {
		a.Tags = []string{}
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt

	_, err = database.AssessmentCollection.InsertOne(ctx, a)
	return err
}

// GetAllAssessments returns a filtered page. Empty filter slices mean no
// filtering on that field.
func GetAllAssessments(params models.PaginationParams, statusFilter, tagFilter []string, companyID string) ([]models.Assessment, int64, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := buildListFilter(params.Search, statusFilter, tagFilter, companyID)

	total, err := database.AssessmentCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}

	findOpts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.AssessmentCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, 0, err
	}
	defer cursor.Close(ctx)

	var assessments []models.Assessment
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, 0, 0, err
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))
	return assessments, total, totalPages, nil
}

// GetAssessmentByID returns one assessment.
func GetAssessmentByID(id string) (*models.Assessment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid assessment ID")
	}

	var a models.Assessment
	err = database.AssessmentCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAssessment replaces title, tags, notes, assignment and questionnaire
// link. Status moves only through ChangeStatus.
func UpdateAssessment(id string, a *models.Assessment) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid assessment ID")
	}

	set := bson.M{
		"title":     a.Title,
		"notes":     a.Notes,
		"updatedAt": time.Now(),
	}
	if a.Tags != nil {
		set["tags"] = normalizeTags(a.Tags)
	}
	if !a.AssignedTo.IsZero() {
		set["assignedTo"] = a.AssignedTo
	}
	if !a.QuestionnaireID.IsZero() {
		set["questionnaireId"] = a.QuestionnaireID
	}

	res, err := database.AssessmentCollection.UpdateOne(context.Background(),
		bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ChangeStatus validates and applies a lifecycle transition. Completing an
// assessment requires a fully answered response.
func ChangeStatus(id, newStatus string) (*models.Assessment, error) {
	a, err := GetAssessmentByID(id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(a.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	if newStatus == models.AssessmentCompleted {
		complete, err := services.HasCompleteResponse(a.ID)
		if err != nil {
			return nil, err
		}
		if !complete {
			return nil, ErrIncompleteResponse
		}
	}

	now := time.Now()
	set := bson.M{"status": newStatus, "updatedAt": now}
	if newStatus == models.AssessmentCompleted {
		set["completedAt"] = now
		a.CompletedAt = &now
	}

	_, err = database.AssessmentCollection.UpdateOne(context.Background(),
		bson.M{"_id": a.ID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}

	a.Status = newStatus
	a.UpdatedAt = now
	return a, nil
}

// DeleteAssessment removes an assessment and its response, recommendations
// and comments. Admin only; normal flows archive instead.
func DeleteAssessment(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid assessment ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.AssessmentCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	_, _ = database.ResponseCollection.DeleteMany(ctx, bson.M{"assessmentId": objID})
	_, _ = database.RecommendationCollection.DeleteMany(ctx, bson.M{"assessmentId": objID})
	_, _ = database.CommentCollection.DeleteMany(ctx, bson.M{
		"targetType": models.CommentTargetAssessment,
		"targetId":   objID,
	})

	return nil
}

// ArchiveStaleDrafts archives drafts untouched for maxAge. Returns the
// number archived. Used by the maintenance job.
func ArchiveStaleDrafts(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	res, err := database.AssessmentCollection.UpdateMany(ctx,
		bson.M{"status": models.AssessmentDraft, "updatedAt": bson.M{"$lt": cutoff}},
		bson.M{"$set": bson.M{"status": models.AssessmentArchived, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
