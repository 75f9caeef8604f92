package assessments

import (
	"Backend-WMS-ROI/src/database"
	"Backend-WMS-ROI/src/models"
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildListFilter assembles the Mongo filter for the assessment list.
func buildListFilter(search string, statusFilter, tagFilter []string, companyID string) bson.M {
	filter := bson.M{}

	if search != "" {
		filter["title"] = bson.M{"$regex": search, "$options": "i"}
	}

	statuses := dropEmpty(statusFilter)
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	tags := dropEmpty(tagFilter)
	if len(tags) > 0 {
		filter["tags"] = bson.M{"$in": tags}
	}

	if companyID != "" {
		if objID, err := primitive.ObjectIDFromHex(companyID); err == nil {
			filter["companyId"] = objID
		}
	}

	return filter
}

// GetTagCounts unwinds tags across non-archived assessments and counts
// each, most used first.
func GetTagCounts() ([]models.TagCount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$ne": models.AssessmentArchived}}},
		{"$unwind": "$tags"},
		{"$group": bson.M{
			"_id":   "$tags",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1, "_id": 1}},
	}

	cursor, err := database.AssessmentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []models.TagCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// normalizeTags lowercases, trims and dedupes.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

func dropEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
