package repository

import (
	"errors"

	"github.com/paikari-bazar/internal/models"

	"gorm.io/gorm"
)

// ConversationRepository is the chat data access interface.
type ConversationRepository interface {
	GetByID(id uint) (*models.Conversation, error)
	GetByPair(customerID, wholesalerID uint) (*models.Conversation, error)
	ListByCustomer(customerID uint) ([]models.Conversation, error)
	ListByWholesaler(wholesalerID uint) ([]models.Conversation, error)
	Create(conversation *models.Conversation) error
	ListMessages(filter MessageListFilter) ([]models.Message, int64, error)
	CreateMessage(message *models.Message) error
	MarkMessagesRead(conversationID uint, senderType string) error
	WithTx(tx *gorm.DB) *GormConversationRepository
}

// GormConversationRepository is the GORM implementation.
type GormConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a chat repository.
func NewConversationRepository(db *gorm.DB) *GormConversationRepository {
	return &GormConversationRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormConversationRepository) WithTx(tx *gorm.DB) *GormConversationRepository {
	if tx == nil {
		return r
	}
	return &GormConversationRepository{db: tx}
}

// GetByID returns a conversation, nil when absent.
func (r *GormConversationRepository) GetByID(id uint) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.First(&conversation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

// GetByPair returns the thread between a customer and a wholesaler.
func (r *GormConversationRepository) GetByPair(customerID, wholesalerID uint) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.Where("customer_id = ? AND wholesaler_id = ?", customerID, wholesalerID).First(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// ListByCustomer returns the customer's threads, most recent first.
func (r *GormConversationRepository) ListByCustomer(customerID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := r.db.Where("customer_id = ?", customerID).
		Order("updated_at desc").
		Find(&conversations).Error; err != nil {
		return nil, err
	}
	return conversations, nil
}

// ListByWholesaler returns the wholesaler's threads, most recent first.
func (r *GormConversationRepository) ListByWholesaler(wholesalerID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := r.db.Where("wholesaler_id = ?", wholesalerID).
		Order("updated_at desc").
		Find(&conversations).Error; err != nil {
		return nil, err
	}
	return conversations, nil
}

// Create inserts a conversation.
func (r *GormConversationRepository) Create(conversation *models.Conversation) error {
	return r.db.Create(conversation).Error
}

// ListMessages returns a message page, oldest first.
func (r *GormConversationRepository) ListMessages(filter MessageListFilter) ([]models.Message, int64, error) {
	var messages []models.Message
	query := r.db.Model(&models.Message{}).Where("conversation_id = ?", filter.ConversationID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id asc").Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// CreateMessage inserts a message and bumps the thread's updated_at.
func (r *GormConversationRepository) CreateMessage(message *models.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return err
	}
	return r.db.Model(&models.Conversation{}).
		Where("id = ?", message.ConversationID).
		Update("updated_at", message.CreatedAt).Error
}

// MarkMessagesRead marks the counterparty's messages as read.
func (r *GormConversationRepository) MarkMessagesRead(conversationID uint, senderType string) error {
	return r.db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_type = ? AND read = ?", conversationID, senderType, false).
		Update("read", true).Error
}
