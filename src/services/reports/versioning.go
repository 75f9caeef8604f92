package reports

import (
	"Backend-WMS-ROI/src/database"
	"Backend-WMS-ROI/src/models"
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetReportVersions lists a report's version history, newest first.
func GetReportVersions(reportID string) ([]models.ReportVersion, error) {
	objID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, errors.New("invalid report ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.ReportVersionCollection.Find(ctx,
		bson.M{"reportId": objID},
		options.Find().SetSort(bson.M{"version": -1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var versions []models.ReportVersion
	if err := cursor.All(ctx, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// RestoreVersion writes an old body back as a brand-new version. History is
// append-only: restoring v2 on a report at v5 produces v6 with v2's body.
func RestoreVersion(reportID, userID string, version int) (*models.Report, error) {
	objID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, errors.New("invalid report ID")
	}
	uID, _ := primitive.ObjectIDFromHex(userID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var old models.ReportVersion
	err = database.ReportVersionCollection.FindOne(ctx,
		bson.M{"reportId": objID, "version": version},
	).Decode(&old)
	if err != nil {
		return nil, err
	}

	report, err := GetReportByID(reportID)
	if err != nil {
		return nil, err
	}
	if report.Status == models.ReportArchived {
		return nil, errors.New("report is archived")
	}

	report.Body = old.Body
	report.CurrentVersion++
	report.UpdatedAt = time.Now()

	_, err = database.ReportCollection.UpdateOne(ctx,
		bson.M{"_id": report.ID},
		bson.M{"$set": bson.M{
			"body":           report.Body,
			"currentVersion": report.CurrentVersion,
			"updatedAt":      report.UpdatedAt,
		}},
	)
	if err != nil {
		return nil, err
	}

	note := "restored from version " + strconv.Itoa(version)
	if err := saveVersion(ctx, report, uID, note); err != nil {
		return nil, err
	}

	return report, nil
}
