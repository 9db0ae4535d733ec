package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newChatFixture(t *testing.T) (*gorm.DB, *ChatService, models.User, models.User) {
	t.Helper()

	dsn := fmt.Sprintf("file:chat_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.WholesalerProfile{}, &models.Conversation{}, &models.Message{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	now := time.Now()
	customer := models.User{Email: "buyer@example.com", PasswordHash: "x", Role: constants.RoleCustomer, Status: constants.UserStatusActive, CreatedAt: now, UpdatedAt: now}
	wholesaler := models.User{Email: "shop@example.com", PasswordHash: "x", Role: constants.RoleWholesaler, Status: constants.UserStatusActive, CreatedAt: now, UpdatedAt: now}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	if err := db.Create(&wholesaler).Error; err != nil {
		t.Fatalf("create wholesaler failed: %v", err)
	}

	svc := NewChatService(repository.NewConversationRepository(db), repository.NewUserRepository(db))
	return db, svc, customer, wholesaler
}

func TestOpenConversationReusesThread(t *testing.T) {
	_, svc, customer, wholesaler := newChatFixture(t)

	first, err := svc.OpenConversation(customer.ID, wholesaler.ID)
	if err != nil {
		t.Fatalf("OpenConversation error: %v", err)
	}
	second, err := svc.OpenConversation(customer.ID, wholesaler.ID)
	if err != nil {
		t.Fatalf("OpenConversation error: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same thread, got %d and %d", first.ID, second.ID)
	}
}

func TestOpenConversationRejectsNonWholesaler(t *testing.T) {
	_, svc, customer, _ := newChatFixture(t)

	if _, err := svc.OpenConversation(customer.ID, customer.ID); !errors.Is(err, ErrChatSelfTarget) {
		t.Fatalf("expected self target error, got: %v", err)
	}
	if _, err := svc.OpenConversation(customer.ID, 999); !errors.Is(err, ErrNotWholesaler) {
		t.Fatalf("expected not wholesaler error, got: %v", err)
	}
}

func TestSendMessageOnlyForParticipants(t *testing.T) {
	_, svc, customer, wholesaler := newChatFixture(t)

	conversation, err := svc.OpenConversation(customer.ID, wholesaler.ID)
	if err != nil {
		t.Fatalf("OpenConversation error: %v", err)
	}

	message, err := svc.SendMessage(conversation.ID, customer.ID, "Do you have 500 units in stock?")
	if err != nil {
		t.Fatalf("SendMessage error: %v", err)
	}
	if message.SenderType != constants.SenderTypeCustomer {
		t.Fatalf("expected customer sender, got %s", message.SenderType)
	}

	if _, err := svc.SendMessage(conversation.ID, 999, "intruding"); !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected hidden thread for outsider, got: %v", err)
	}
	if _, err := svc.SendMessage(conversation.ID, customer.ID, "   "); !errors.Is(err, ErrMessageEmpty) {
		t.Fatalf("expected empty message error, got: %v", err)
	}
}

func TestGetMessagesMarksCounterpartyRead(t *testing.T) {
	db, svc, customer, wholesaler := newChatFixture(t)

	conversation, err := svc.OpenConversation(customer.ID, wholesaler.ID)
	if err != nil {
		t.Fatalf("OpenConversation error: %v", err)
	}
	if _, err := svc.SendMessage(conversation.ID, customer.ID, "price?"); err != nil {
		t.Fatalf("SendMessage error: %v", err)
	}

	messages, total, err := svc.GetMessages(conversation.ID, wholesaler.ID, 1, 20)
	if err != nil {
		t.Fatalf("GetMessages error: %v", err)
	}
	if total != 1 || len(messages) != 1 {
		t.Fatalf("expected one message, got %d", total)
	}

	var unread int64
	if err := db.Model(&models.Message{}).
		Where("conversation_id = ? AND read = ?", conversation.ID, false).
		Count(&unread).Error; err != nil {
		t.Fatalf("count unread failed: %v", err)
	}
	if unread != 0 {
		t.Fatalf("expected customer messages marked read, %d still unread", unread)
	}
}
