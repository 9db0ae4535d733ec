package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a wholesaler listing awaiting or holding admin approval.
type Product struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	CategoryID   uint           `gorm:"index;not null" json:"category_id"`
	WholesalerID *uint          `gorm:"index" json:"wholesaler_id,omitempty"` // nil for admin-seeded listings
	Name         string         `gorm:"not null;index" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	ImageURL     string         `gorm:"type:varchar(500)" json:"image_url"`
	VideoURL     string         `gorm:"type:varchar(500)" json:"video_url"`
	Status       string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"` // pending / approved / rejected
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Items    []Item    `gorm:"foreignKey:ProductID" json:"items,omitempty"`
}

// TableName returns the table name.
func (Product) TableName() string {
	return "products"
}
