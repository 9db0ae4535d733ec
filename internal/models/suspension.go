package models

import (
	"time"

	"gorm.io/gorm"
)

// Suspension restricts a user account, either permanently or until an
// expiry timestamp. Lifting a suspension deletes the row.
type Suspension struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `gorm:"index;not null" json:"user_id"`
	Reason         string         `gorm:"type:text;not null" json:"reason"`
	IsPermanent    bool           `gorm:"not null;default:false" json:"is_permanent"`
	SuspendedUntil *time.Time     `gorm:"index" json:"suspended_until,omitempty"`
	SuspendedBy    uint           `gorm:"index;not null" json:"suspended_by"` // admin id
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// Active reports whether the suspension is in force at the given time.
func (s Suspension) Active(now time.Time) bool {
	if s.IsPermanent {
		return true
	}
	if s.SuspendedUntil == nil {
		return false
	}
	return s.SuspendedUntil.After(now)
}

// TableName returns the table name.
func (Suspension) TableName() string {
	return "suspensions"
}
