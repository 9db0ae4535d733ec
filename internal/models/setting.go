package models

import "time"

// Setting is a key/value row (e.g. the bKash collection number).
type Setting struct {
	Key       string    `gorm:"primarykey" json:"key"`
	Value     string    `gorm:"type:varchar(500);not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name.
func (Setting) TableName() string {
	return "settings"
}
