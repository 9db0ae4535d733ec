package models

import (
	"time"

	"gorm.io/gorm"
)

// Item is a purchasable unit under a product, carrying its own price
// and minimum order quantity.
type Item struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	ProductID         uint           `gorm:"index;not null" json:"product_id"`
	Name              string         `gorm:"not null;index" json:"name"`
	Description       string         `gorm:"type:text" json:"description"`
	Price             Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	MinimumQuantity   int            `gorm:"not null;default:1" json:"minimum_quantity"`
	ImageURL          string         `gorm:"type:varchar(500)" json:"image_url"`
	VideoURL          string         `gorm:"type:varchar(500)" json:"video_url"`
	InStock           bool           `gorm:"not null;default:true" json:"in_stock"`
	AdditionalDetails JSON           `gorm:"type:json" json:"additional_details"`
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name.
func (Item) TableName() string {
	return "items"
}
