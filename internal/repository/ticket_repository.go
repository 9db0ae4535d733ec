package repository

import (
	"errors"

	"github.com/paikari-bazar/internal/models"

	"gorm.io/gorm"
)

// TicketRepository is the support ticket data access interface.
type TicketRepository interface {
	GetByID(id uint) (*models.Ticket, error)
	GetByIDAndUser(id, userID uint) (*models.Ticket, error)
	List(filter TicketListFilter) ([]models.Ticket, int64, error)
	Create(ticket *models.Ticket) error
	CreateReply(reply *models.TicketReply) error
	UpdateStatus(id uint, status string) error
	WithTx(tx *gorm.DB) *GormTicketRepository
}

// GormTicketRepository is the GORM implementation.
type GormTicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a ticket repository.
func NewTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormTicketRepository) WithTx(tx *gorm.DB) *GormTicketRepository {
	if tx == nil {
		return r
	}
	return &GormTicketRepository{db: tx}
}

// GetByID returns a ticket with replies, nil when absent.
func (r *GormTicketRepository) GetByID(id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := r.db.Preload("Replies", func(db *gorm.DB) *gorm.DB {
		return db.Order("ticket_replies.id asc")
	}).First(&ticket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

// GetByIDAndUser returns one of the user's tickets.
func (r *GormTicketRepository) GetByIDAndUser(id, userID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := r.db.Preload("Replies", func(db *gorm.DB) *gorm.DB {
		return db.Order("ticket_replies.id asc")
	}).Where("id = ? AND user_id = ?", id, userID).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

// List returns a ticket page.
func (r *GormTicketRepository) List(filter TicketListFilter) ([]models.Ticket, int64, error) {
	var tickets []models.Ticket
	query := r.db.Model(&models.Ticket{})

	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id desc").Find(&tickets).Error; err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

// Create inserts a ticket.
func (r *GormTicketRepository) Create(ticket *models.Ticket) error {
	return r.db.Create(ticket).Error
}

// CreateReply inserts a reply.
func (r *GormTicketRepository) CreateReply(reply *models.TicketReply) error {
	return r.db.Create(reply).Error
}

// UpdateStatus updates the ticket status.
func (r *GormTicketRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Ticket{}).Where("id = ?", id).Update("status", status).Error
}
