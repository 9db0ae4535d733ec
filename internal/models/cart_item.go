package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem is one line of a user's cart, unique per item.
// Prices are always read live from the item, never snapshotted here.
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"user_id"`
	ItemID    uint           `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"item_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// TableName returns the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
