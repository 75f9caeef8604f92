package reports

import (
	"Backend-WMS-ROI/src/database"
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/services/roi"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GenerateReport snapshots an assessment into a version-1 report: ROI
// recomputed server-side from the company profile and answers, plus the
// accepted recommendations.
func GenerateReport(assessmentID, userID string) (*models.Report, error) {
	aID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return nil, errors.New("invalid assessment ID")
	}
	uID, _ := primitive.ObjectIDFromHex(userID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var assessment models.Assessment
	if err := database.AssessmentCollection.FindOne(ctx, bson.M{"_id": aID}).Decode(&assessment); err != nil {
		return nil, err
	}

	var company models.Company
	if err := database.CompanyCollection.FindOne(ctx, bson.M{"_id": assessment.CompanyID}).Decode(&company); err != nil {
		return nil, errors.New("company not found")
	}

	answers := map[string]interface{}{}
	var resp models.QuestionnaireResponse
	err = database.ResponseCollection.FindOne(ctx, bson.M{"assessmentId": aID}).Decode(&resp)
	if err == nil {
		answers = resp.Answers
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}

	discountRate := services.ResolveFloatSetting("roi.discountRate", userID, assessment.CompanyID.Hex(), roi.DefaultDiscountRate)

	snapshot := roi.Compute(roi.InputsFromAnswers(company.Warehouse, answers, discountRate))
	snapshot.ComputedAt = time.Now()

	accepted, err := services.GetAcceptedRecommendations(aID)
	if err != nil {
		return nil, err
	}
	if accepted == nil {
		accepted = []models.Recommendation{}
	}

	now := time.Now()
	report := &models.Report{
		ID:             primitive.NewObjectID(),
		AssessmentID:   aID,
		CompanyID:      assessment.CompanyID,
		Status:         models.ReportDraft,
		CurrentVersion: 1,
		Body: models.ReportBody{
			Title:           assessment.Title + " — ROI Report",
			Summary:         "",
			Roi:             snapshot,
			Recommendations: accepted,
		},
		GeneratedBy: uID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := database.ReportCollection.InsertOne(ctx, report); err != nil {
		return nil, err
	}

	if err := saveVersion(ctx, report, uID, "initial generation"); err != nil {
		return nil, err
	}

	return report, nil
}

// GetAllReports returns a page of reports, optionally scoped to a company.
func GetAllReports(params models.PaginationParams, companyID string) ([]models.Report, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if companyID != "" {
		objID, err := primitive.ObjectIDFromHex(companyID)
		if err != nil {
			return nil, 0, errors.New("invalid company ID")
		}
		filter["companyId"] = objID
	}
	if params.Search != "" {
		filter["body.title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := database.ReportCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.ReportCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

// GetReportByID returns one report.
func GetReportByID(id string) (*models.Report, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid report ID")
	}

	var report models.Report
	err = database.ReportCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateReportBody applies an edited body as a new version. The previous
// body is already in report_versions; the new one is appended there too, so
// the history always holds every version including the current.
func UpdateReportBody(id, userID string, body models.ReportBody, note string) (*models.Report, error) {
	report, err := GetReportByID(id)
	if err != nil {
		return nil, err
	}
	if report.Status == models.ReportArchived {
		return nil, errors.New("report is archived")
	}

	uID, _ := primitive.ObjectIDFromHex(userID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// editing never recomputes the ROI snapshot, it stays frozen
	body.Roi = report.Body.Roi

	report.Body = body
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

	if err := saveVersion(ctx, report, uID, note); err != nil {
		return nil, err
	}

	return report, nil
}

// SetReportStatus moves a report between draft, final and archived.
func SetReportStatus(id, status string) error {
	switch status {
	case models.ReportDraft, models.ReportFinal, models.ReportArchived:
	default:
		return errors.New("invalid report status")
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid report ID")
	}

	res, err := database.ReportCollection.UpdateOne(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AppendExport stores a completed export payload on the report.
func AppendExport(ctx context.Context, reportID primitive.ObjectID, export models.ReportExport) error {
	_, err := database.ReportCollection.UpdateOne(ctx,
		bson.M{"_id": reportID},
		bson.M{"$push": bson.M{"exports": export}},
	)
	return err
}

func saveVersion(ctx context.Context, report *models.Report, savedBy primitive.ObjectID, note string) error {
	version := models.ReportVersion{
		ID:       primitive.NewObjectID(),
		ReportID: report.ID,
		Version:  report.CurrentVersion,
		Body:     report.Body,
		SavedBy:  savedBy,
		Note:     note,
		SavedAt:  time.Now(),
	}
	_, err := database.ReportVersionCollection.InsertOne(ctx, version)
	return err
}
