package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting scopes, from most to least specific during resolution.
const (
	ScopeUser    = "user"
	ScopeCompany = "company"
	ScopeGlobal  = "global"
)

// Setting is a scoped key/value pair. ScopeID is the user or company the
// value belongs to and stays empty for global scope. (scope, scopeId, key)
// is unique.
type Setting struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Scope     string             `bson:"scope" json:"scope" validate:"required,oneof=global company user"`
	ScopeID   string             `bson:"scopeId" json:"scopeId"`
	Key       string             `bson:"key" json:"key" validate:"required"`
	Value     interface{}        `bson:"value" json:"value"`
	UpdatedBy primitive.ObjectID `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func IsValidScope(scope string) bool {
	switch scope {
	case ScopeUser, ScopeCompany, ScopeGlobal:
		return true
	}
	return false
}
