package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	// The five statuses are a flat relabeling: any status may be set from
	// any other via an explicit admin action.
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

const (
	OrderCreatedByCustomer = "customer"
	OrderCreatedByAdmin    = "admin"
)

type Order struct {
	ID        string      `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID string      `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product    `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	FirstName string      `gorm:"not null" json:"first_name"`
	LastName  string      `gorm:"not null" json:"last_name"`
	Phone     string      `gorm:"not null" json:"phone"`
	Quantity  int         `gorm:"not null;default:1" json:"quantity"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'pending';index" json:"status"`
	Notes     *string     `json:"notes"`
	CreatedBy string      `gorm:"default:'customer'" json:"created_by"`
	CreatedAt time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
