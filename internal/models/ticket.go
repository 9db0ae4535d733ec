package models

import (
	"time"

	"gorm.io/gorm"
)

// Ticket is a customer support/feedback thread.
type Ticket struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"index;not null" json:"user_id"`
	Subject   string         `gorm:"not null" json:"subject"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	Status    string         `gorm:"type:varchar(20);not null;default:'open';index" json:"status"` // open / resolved
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Replies []TicketReply `gorm:"foreignKey:TicketID" json:"replies,omitempty"`
}

// TableName returns the table name.
func (Ticket) TableName() string {
	return "tickets"
}

// TicketReply is one message inside a ticket thread.
type TicketReply struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	TicketID   uint           `gorm:"index;not null" json:"ticket_id"`
	AuthorType string         `gorm:"type:varchar(20);not null" json:"author_type"` // user / admin
	AuthorID   uint           `gorm:"index;not null" json:"author_id"`
	Body       string         `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name.
func (TicketReply) TableName() string {
	return "ticket_replies"
}
