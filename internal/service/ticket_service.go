package service

import (
	"strings"
	"time"

	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/logger"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/queue"
	"github.com/paikari-bazar/internal/repository"
)

// TicketService manages support tickets and their replies.
type TicketService struct {
	ticketRepo  repository.TicketRepository
	queueClient *queue.Client
}

// NewTicketService creates a ticket service.
func NewTicketService(ticketRepo repository.TicketRepository, queueClient *queue.Client) *TicketService {
	return &TicketService{
		ticketRepo:  ticketRepo,
		queueClient: queueClient,
	}
}

// Create opens a ticket for the user.
func (s *TicketService) Create(userID uint, subject, body string) (*models.Ticket, error) {
	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)
	if subject == "" || body == "" {
		return nil, ErrMessageEmpty
	}

	now := time.Now()
	ticket := &models.Ticket{
		UserID:    userID,
		Subject:   subject,
		Body:      body,
		Status:    constants.TicketStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ticketRepo.Create(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListForUser returns the user's tickets.
func (s *TicketService) ListForUser(userID uint, page, pageSize int) ([]models.Ticket, int64, error) {
	return s.ticketRepo.List(repository.TicketListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// GetForUser returns one of the user's tickets with replies.
func (s *TicketService) GetForUser(id, userID uint) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	return ticket, nil
}

// ReplyAsUser appends a user reply to their own open ticket.
func (s *TicketService) ReplyAsUser(ticketID, userID uint, body string) (*models.TicketReply, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrMessageEmpty
	}

	ticket, err := s.GetForUser(ticketID, userID)
	if err != nil {
		return nil, err
	}
	if ticket.Status != constants.TicketStatusOpen {
		return nil, ErrTicketClosed
	}

	reply := &models.TicketReply{
		TicketID:   ticketID,
		AuthorType: constants.AuthorTypeUser,
		AuthorID:   userID,
		Body:       body,
		CreatedAt:  time.Now(),
	}
	if err := s.ticketRepo.CreateReply(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// ListAdmin returns tickets for the moderation panel.
func (s *TicketService) ListAdmin(page, pageSize int, status string) ([]models.Ticket, int64, error) {
	return s.ticketRepo.List(repository.TicketListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(status),
	})
}

// GetByID fetches any ticket with replies.
func (s *TicketService) GetByID(id uint) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	return ticket, nil
}

// ReplyAsAdmin appends a staff reply and notifies the ticket owner.
func (s *TicketService) ReplyAsAdmin(ticketID, adminID uint, body string) (*models.TicketReply, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrMessageEmpty
	}

	ticket, err := s.GetByID(ticketID)
	if err != nil {
		return nil, err
	}

	reply := &models.TicketReply{
		TicketID:   ticketID,
		AuthorType: constants.AuthorTypeAdmin,
		AuthorID:   adminID,
		Body:       body,
		CreatedAt:  time.Now(),
	}
	if err := s.ticketRepo.CreateReply(reply); err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueTicketReplyEmail(queue.TicketReplyEmailPayload{
		TicketID: ticket.ID,
		ReplyID:  reply.ID,
	}); err != nil {
		logger.Warnw("ticket_reply_enqueue_failed",
			"ticket_id", ticket.ID,
			"error", err,
		)
	}

	return reply, nil
}

// Resolve closes an open ticket.
func (s *TicketService) Resolve(id uint) (*models.Ticket, error) {
	return s.setStatus(id, constants.TicketStatusResolved)
}

// Reopen re-opens a resolved ticket.
func (s *TicketService) Reopen(id uint) (*models.Ticket, error) {
	return s.setStatus(id, constants.TicketStatusOpen)
}

func (s *TicketService) setStatus(id uint, status string) (*models.Ticket, error) {
	ticket, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket.Status == status {
		return ticket, nil
	}
	if err := s.ticketRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	ticket.Status = status
	return ticket, nil
}
