package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. Viewer is read-only everywhere.
const (
	RoleAdmin      = "admin"
	RoleConsultant = "consultant"
	RoleSales      = "sales"
	RoleViewer     = "viewer"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Role      string             `bson:"role" json:"role" validate:"required,oneof=admin consultant sales viewer"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	LastLogin *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleConsultant, RoleSales, RoleViewer:
		return true
	}
	return false
}
