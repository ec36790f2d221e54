package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  *string   `json:"description"`
	CategoryID   *string   `gorm:"type:uuid;index" json:"category_id"`
	Category     *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Price        float64   `gorm:"not null" json:"price"`
	ImageURL     *string   `json:"image_url"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`      // false = soft deleted, hidden everywhere
	OrderEnabled bool      `gorm:"default:false" json:"order_enabled"` // gates the public "place order" action
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
