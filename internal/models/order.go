package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a placed wholesale order with its bKash advance payment.
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`
	UserID          uint           `gorm:"index;not null" json:"user_id"`
	CustomerName    string         `gorm:"not null" json:"customer_name"`
	CustomerEmail   string         `gorm:"index;not null" json:"customer_email"`
	CustomerPhone   string         `gorm:"type:varchar(32);not null" json:"customer_phone"`
	CustomerAddress string         `gorm:"type:text;not null" json:"customer_address"`
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	AdvanceAmount   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"advance_amount"`
	TransactionID   string         `gorm:"not null" json:"transaction_id"` // buyer-entered bKash reference
	Status          string         `gorm:"index;not null" json:"status"`
	CancelledAt     *time.Time     `gorm:"index" json:"cancelled_at"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName returns the table name.
func (Order) TableName() string {
	return "orders"
}
