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

// CreateCompany inserts a new prospect company.
func CreateCompany(company *models.Company) error {
	company.ID = primitive.NewObjectID()
	company.CreatedAt = time.Now()
	company.UpdatedAt = company.CreatedAt

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := database.CompanyCollection.InsertOne(ctx, company)
	return err
}

// GetAllCompanies returns a page of companies. Search matches name and
// industry, case-insensitive.
func GetAllCompanies(params models.PaginationParams) ([]models.Company, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": params.Search, "$options": "i"}},
			{"industry": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	total, err := database.CompanyCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.CompanyCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// GetCompanyByID returns one company.
func GetCompanyByID(id string) (*models.Company, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid company ID")
	}

	var company models.Company
	err = database.CompanyCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&company)
	if err != nil {
		return nil, err
	}

	return &company, nil
}

// UpdateCompany replaces the mutable fields of a company.
func UpdateCompany(id string, company *models.Company) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid company ID")
	}

	update := bson.M{"$set": bson.M{
		"name":      company.Name,
		"industry":  company.Industry,
		"contact":   company.Contact,
		"warehouse": company.Warehouse,
		"updatedAt": time.Now(),
	}}

	res, err := database.CompanyCollection.UpdateOne(context.Background(), bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteCompany removes a company. Companies with live assessments are kept.
func DeleteCompany(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid company ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := database.AssessmentCollection.CountDocuments(ctx, bson.M{
		"companyId": objID,
		"status":    bson.M{"$ne": models.AssessmentArchived},
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("company has active assessments")
	}

	res, err := database.CompanyCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
