package reports

import (
	"Backend-WMS-ROI/src/database"
	"Backend-WMS-ROI/src/models"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ShareReport issues a share token for unauthenticated read-only access.
// Re-sharing returns the existing token.
func ShareReport(id string) (string, error) {
	report, err := GetReportByID(id)
	if err != nil {
		return "", err
	}
	if report.ShareToken != "" {
		return report.ShareToken, nil
	}

	token := uuid.NewString()
	_, err = database.ReportCollection.UpdateOne(context.Background(),
		bson.M{"_id": report.ID},
		bson.M{"$set": bson.M{"shareToken": token, "updatedAt": time.Now()}},
	)
	if err != nil {
		return "", err
	}
	return token, nil
}

// RevokeShare clears the share token; the old link stops working.
func RevokeShare(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid report ID")
	}

	res, err := database.ReportCollection.UpdateOne(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$unset": bson.M{"shareToken": ""}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetReportByShareToken resolves a share link. Archived reports are not
// served.
func GetReportByShareToken(token string) (*models.Report, error) {
	if token == "" {
		return nil, mongo.ErrNoDocuments
	}

	var report models.Report
	err := database.ReportCollection.FindOne(context.Background(), bson.M{
		"shareToken": token,
		"status":     bson.M{"$ne": models.ReportArchived},
	}).Decode(&report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
