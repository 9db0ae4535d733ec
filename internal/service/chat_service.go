package service

import (
	"strings"
	"time"

	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"
)

// ChatService manages customer to wholesaler conversations. Each pair
// has at most one thread, reused across orders.
type ChatService struct {
	conversationRepo repository.ConversationRepository
	userRepo         repository.UserRepository
}

// NewChatService creates a chat service.
func NewChatService(conversationRepo repository.ConversationRepository, userRepo repository.UserRepository) *ChatService {
	return &ChatService{
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
	}
}

// OpenConversation finds or creates the thread between a customer and
// a wholesaler.
func (s *ChatService) OpenConversation(customerID, wholesalerID uint) (*models.Conversation, error) {
	if customerID == wholesalerID {
		return nil, ErrChatSelfTarget
	}

	wholesaler, err := s.userRepo.GetByID(wholesalerID)
	if err != nil {
		return nil, err
	}
	if wholesaler == nil || wholesaler.Role != constants.RoleWholesaler {
		return nil, ErrNotWholesaler
	}

	existing, err := s.conversationRepo.GetByPair(customerID, wholesalerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	conversation := &models.Conversation{
		CustomerID:   customerID,
		WholesalerID: wholesalerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.conversationRepo.Create(conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// ListForCustomer returns the customer's threads, most recent first.
func (s *ChatService) ListForCustomer(customerID uint) ([]models.Conversation, error) {
	return s.conversationRepo.ListByCustomer(customerID)
}

// ListForWholesaler returns the wholesaler's threads, most recent first.
func (s *ChatService) ListForWholesaler(wholesalerID uint) ([]models.Conversation, error) {
	return s.conversationRepo.ListByWholesaler(wholesalerID)
}

// GetMessages returns a message page for a participant and marks the
// counterparty's messages read.
func (s *ChatService) GetMessages(conversationID, userID uint, page, pageSize int) ([]models.Message, int64, error) {
	conversation, senderType, err := s.participant(conversationID, userID)
	if err != nil {
		return nil, 0, err
	}

	messages, total, err := s.conversationRepo.ListMessages(repository.MessageListFilter{
		Page:           page,
		PageSize:       pageSize,
		ConversationID: conversation.ID,
	})
	if err != nil {
		return nil, 0, err
	}

	counterparty := constants.SenderTypeWholesaler
	if senderType == constants.SenderTypeWholesaler {
		counterparty = constants.SenderTypeCustomer
	}
	if err := s.conversationRepo.MarkMessagesRead(conversation.ID, counterparty); err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// SendMessage appends a message from a participant.
func (s *ChatService) SendMessage(conversationID, userID uint, body string) (*models.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrMessageEmpty
	}

	conversation, senderType, err := s.participant(conversationID, userID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ConversationID: conversation.ID,
		SenderType:     senderType,
		SenderID:       userID,
		Body:           body,
		CreatedAt:      time.Now(),
	}
	if err := s.conversationRepo.CreateMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}

// participant resolves which side of the thread the user is on.
func (s *ChatService) participant(conversationID, userID uint) (*models.Conversation, string, error) {
	conversation, err := s.conversationRepo.GetByID(conversationID)
	if err != nil {
		return nil, "", err
	}
	if conversation == nil {
		return nil, "", ErrConversationNotFound
	}
	switch userID {
	case conversation.CustomerID:
		return conversation, constants.SenderTypeCustomer, nil
	case conversation.WholesalerID:
		return conversation, constants.SenderTypeWholesaler, nil
	default:
		return nil, "", ErrConversationNotFound
	}
}
