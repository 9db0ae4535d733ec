package public

import (
	"errors"

	handlershared "github.com/paikari-bazar/internal/http/handlers/shared"
	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateTicketRequest is the support ticket payload.
type CreateTicketRequest struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// CreateTicket opens a support ticket.
func (h *Handler) CreateTicket(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	ticket, err := h.TicketService.Create(userID, req.Subject, req.Body)
	if err != nil {
		if errors.Is(err, service.ErrMessageEmpty) {
			respondError(c, response.CodeBadRequest, "subject and body are required", nil)
			return
		}
		respondError(c, response.CodeInternal, "create ticket failed", err)
		return
	}
	response.Success(c, ticket)
}

// ListTickets returns the signed-in user's tickets.
func (h *Handler) ListTickets(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	tickets, total, err := h.TicketService.ListForUser(userID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "list tickets failed", err)
		return
	}
	response.SuccessWithPage(c, tickets, handlershared.BuildPagination(page, pageSize, total))
}

// GetTicket returns one of the signed-in user's tickets with replies.
func (h *Handler) GetTicket(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ticket, err := h.TicketService.GetForUser(id, userID)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			respondError(c, response.CodeNotFound, "ticket not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "load ticket failed", err)
		return
	}
	response.Success(c, ticket)
}

// TicketReplyRequest is the reply payload.
type TicketReplyRequest struct {
	Body string `json:"body" binding:"required"`
}

// ReplyTicket appends the user's reply to an open ticket.
func (h *Handler) ReplyTicket(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req TicketReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	reply, err := h.TicketService.ReplyAsUser(id, userID, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			respondError(c, response.CodeNotFound, "ticket not found", nil)
		case errors.Is(err, service.ErrTicketClosed):
			respondError(c, response.CodeBadRequest, "ticket is resolved", nil)
		case errors.Is(err, service.ErrMessageEmpty):
			respondError(c, response.CodeBadRequest, "reply body is required", nil)
		default:
			respondError(c, response.CodeInternal, "reply failed", err)
		}
		return
	}
	response.Success(c, reply)
}
