package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit actions.
const (
	AuditCreate  = "create"
	AuditUpdate  = "update"
	AuditDelete  = "delete"
	AuditRestore = "restore"
	AuditLogin   = "login"
	AuditLogout  = "logout"
)

type AuditLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	Entity      string             `bson:"entity" json:"entity"`
	EntityID    string             `bson:"entityId,omitempty" json:"entityId,omitempty"`
	Action      string             `bson:"action" json:"action"`
	PerformedBy string             `bson:"performedBy" json:"performedBy"`
	IP          string             `bson:"ip,omitempty" json:"ip,omitempty"`
	Data        interface{}        `bson:"data,omitempty" json:"data,omitempty"`
}
