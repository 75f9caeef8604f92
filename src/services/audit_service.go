package services

import (
	"Backend-WMS-ROI/src/database"
	"Backend-WMS-ROI/src/models"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WriteAudit records a mutation fire-and-forget. Insert failures are logged
// and never surfaced to the caller.
func WriteAudit(entity, entityID, action, performedBy, ip string, data interface{}) {
	entry := models.AuditLog{
		ID:          primitive.NewObjectID(),
		Timestamp:   time.Now(),
		Entity:      entity,
		EntityID:    entityID,
		Action:      action,
		PerformedBy: performedBy,
		IP:          ip,
		Data:        data,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := database.AuditLogCollection.InsertOne(ctx, entry); err != nil {
		log.Println("⚠️ audit write failed:", err)
	}
}

// AuditFilter narrows the admin audit query.
type AuditFilter struct {
	Entity      string
	Action      string
	PerformedBy string
	From        *time.Time
	To          *time.Time
}

// GetAuditLogs returns a page of audit entries, newest first.
func GetAuditLogs(params models.PaginationParams, f AuditFilter) ([]models.AuditLog, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if f.Entity != "" {
		filter["entity"] = f.Entity
	}
	if f.Action != "" {
		filter["action"] = f.Action
	}
	if f.PerformedBy != "" {
		filter["performedBy"] = f.PerformedBy
	}
	if f.From != nil || f.To != nil {
		ts := bson.M{}
		if f.From != nil {
			ts["$gte"] = *f.From
		}
		if f.To != nil {
			ts["$lte"] = *f.To
		}
		filter["timestamp"] = ts
	}

	total, err := database.AuditLogCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.M{"timestamp": -1})

	cursor, err := database.AuditLogCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var logs []models.AuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// PurgeAuditLogsOlderThan deletes entries past the retention window and
// returns how many were removed.
func PurgeAuditLogsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := database.AuditLogCollection.DeleteMany(ctx, bson.M{
		"timestamp": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
