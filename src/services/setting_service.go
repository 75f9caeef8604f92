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

// UpsertSetting writes a setting at its scope. (scope, scopeId, key) is the
// upsert identity.
func UpsertSetting(setting *models.Setting) error {
	if !models.IsValidScope(setting.Scope) {
		return errors.New("invalid scope")
	}
	if setting.Scope == models.ScopeGlobal {
		setting.ScopeID = ""
	} else if setting.ScopeID == "" {
		return errors.New("scopeId is required for non-global settings")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"scope": setting.Scope, "scopeId": setting.ScopeID, "key": setting.Key}
	update := bson.M{
		"$set": bson.M{
			"value":     setting.Value,
			"updatedBy": setting.UpdatedBy,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"scope":     setting.Scope,
			"scopeId":   setting.ScopeID,
			"key":       setting.Key,
			"createdAt": now,
		},
	}

	_, err := database.SettingCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// ResolveSetting looks the key up user → company → global and returns the
// most specific match.
func ResolveSetting(key, userID, companyID string) (*models.Setting, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lookups := []bson.M{}
	if userID != "" {
		lookups = append(lookups, bson.M{"scope": models.ScopeUser, "scopeId": userID, "key": key})
	}
	if companyID != "" {
		lookups = append(lookups, bson.M{"scope": models.ScopeCompany, "scopeId": companyID, "key": key})
	}
	lookups = append(lookups, bson.M{"scope": models.ScopeGlobal, "scopeId": "", "key": key})

	for _, filter := range lookups {
		var setting models.Setting
		err := database.SettingCollection.FindOne(ctx, filter).Decode(&setting)
		if err == nil {
			return &setting, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}

	return nil, mongo.ErrNoDocuments
}

// ListSettings returns all settings at one scope.
func ListSettings(scope, scopeID string) ([]models.Setting, error) {
	if !models.IsValidScope(scope) {
		return nil, errors.New("invalid scope")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.SettingCollection.Find(ctx, bson.M{"scope": scope, "scopeId": scopeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var settings []models.Setting
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// DeleteSetting removes one setting at its scope.
func DeleteSetting(scope, scopeID, key string) error {
	res, err := database.SettingCollection.DeleteOne(context.Background(),
		bson.M{"scope": scope, "scopeId": scopeID, "key": key})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ResolveFloatSetting resolves a numeric setting with a default.
func ResolveFloatSetting(key, userID, companyID string, fallback float64) float64 {
	setting, err := ResolveSetting(key, userID, companyID)
	if err != nil {
		return fallback
	}
	switch v := setting.Value.(type) {
	case float64:
		return v
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}
