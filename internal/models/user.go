package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a storefront account (customer or wholesaler).
type User struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string         `gorm:"not null" json:"-"`
	Name               string         `gorm:"default:''" json:"name"`
	Phone              string         `gorm:"type:varchar(32);default:''" json:"phone"`
	Role               string         `gorm:"type:varchar(20);not null;default:'customer';index" json:"role"` // customer / wholesaler
	Status             string         `gorm:"default:'active'" json:"status"`
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"` // tokens issued before this moment are rejected
	LastLoginAt        *time.Time     `json:"last_login_at"`
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	Profile *WholesalerProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

// TableName returns the table name.
func (User) TableName() string {
	return "users"
}
