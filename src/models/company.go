package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WarehouseProfile holds the operational numbers the ROI projection reads.
type WarehouseProfile struct {
	Sites          int     `bson:"sites" json:"sites" validate:"gte=0"`
	SkuCount       int     `bson:"skuCount" json:"skuCount" validate:"gte=0"`
	OrdersPerDay   int     `bson:"ordersPerDay" json:"ordersPerDay" validate:"gte=0"`
	Pickers        int     `bson:"pickers" json:"pickers" validate:"gte=0"`
	WagePerHour    float64 `bson:"wagePerHour" json:"wagePerHour" validate:"gte=0"`
	ErrorRatePct   float64 `bson:"errorRatePct" json:"errorRatePct" validate:"gte=0,lte=1"`
	InventoryValue float64 `bson:"inventoryValue" json:"inventoryValue" validate:"gte=0"`
}

type Contact struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email" validate:"omitempty,email"`
	Phone string `bson:"phone" json:"phone"`
}

type Company struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Industry  string             `bson:"industry" json:"industry"`
	Contact   Contact            `bson:"contact" json:"contact"`
	Warehouse WarehouseProfile   `bson:"warehouse" json:"warehouse"`
	OwnerID   primitive.ObjectID `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
