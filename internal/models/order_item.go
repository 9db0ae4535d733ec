package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is one line of an order with name and price snapshots.
type OrderItem struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	OrderID    uint           `gorm:"index;not null" json:"order_id"`
	ItemID     uint           `gorm:"index;not null" json:"item_id"`
	ItemName   string         `gorm:"not null" json:"item_name"`
	UnitPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	Quantity   int            `gorm:"not null" json:"quantity"`
	TotalPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
