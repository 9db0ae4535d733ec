package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups products under a storefront section.
type Category struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Section     string         `gorm:"type:varchar(20);not null;index" json:"section"` // local / chinese
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name.
func (Category) TableName() string {
	return "categories"
}
