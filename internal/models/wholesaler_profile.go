package models

import (
	"time"

	"gorm.io/gorm"
)

// WholesalerProfile holds the public shop details of a wholesaler account.
type WholesalerProfile struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	ShopName    string         `gorm:"not null" json:"shop_name"`
	Description string         `gorm:"type:text" json:"description"`
	LogoURL     string         `gorm:"type:varchar(500)" json:"logo_url"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name.
func (WholesalerProfile) TableName() string {
	return "wholesaler_profiles"
}
