package models

import (
	"time"

	"gorm.io/gorm"
)

// Conversation is a buyer-wholesaler chat thread, unique per pair.
type Conversation struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	CustomerID   uint           `gorm:"not null;uniqueIndex:idx_conv_pair" json:"customer_id"`
	WholesalerID uint           `gorm:"not null;uniqueIndex:idx_conv_pair" json:"wholesaler_id"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Messages []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

// TableName returns the table name.
func (Conversation) TableName() string {
	return "conversations"
}

// Message is one chat message.
type Message struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	ConversationID uint           `gorm:"index;not null" json:"conversation_id"`
	SenderType     string         `gorm:"type:varchar(20);not null" json:"sender_type"` // customer / wholesaler
	SenderID       uint           `gorm:"index;not null" json:"sender_id"`
	Body           string         `gorm:"type:text;not null" json:"body"`
	Read           bool           `gorm:"not null;default:false" json:"read"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name.
func (Message) TableName() string {
	return "messages"
}
