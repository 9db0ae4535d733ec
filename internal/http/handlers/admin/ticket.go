package admin

import (
	"errors"
	"strings"

	handlershared "github.com/paikari-bazar/internal/http/handlers/shared"
	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// ListTickets returns tickets across all users.
func (h *Handler) ListTickets(c *gin.Context) {
	page, pageSize := parsePagination(c)

	tickets, total, err := h.TicketService.ListAdmin(page, pageSize, strings.TrimSpace(c.Query("status")))
	if err != nil {
		respondError(c, response.CodeInternal, "list tickets failed", err)
		return
	}
	response.SuccessWithPage(c, tickets, handlershared.BuildPagination(page, pageSize, total))
}

// GetTicket returns a ticket with its reply thread.
func (h *Handler) GetTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ticket, err := h.TicketService.GetByID(id)
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

// ReplyTicketRequest is the staff reply payload.
type ReplyTicketRequest struct {
	Body string `json:"body" binding:"required"`
}

// ReplyTicket appends a staff reply. The ticket owner gets an email
// notification through the queue.
func (h *Handler) ReplyTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var req ReplyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	reply, err := h.TicketService.ReplyAsAdmin(id, adminID, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			respondError(c, response.CodeNotFound, "ticket not found", nil)
		case errors.Is(err, service.ErrMessageEmpty):
			respondError(c, response.CodeBadRequest, "reply body is empty", nil)
		default:
			respondError(c, response.CodeInternal, "reply ticket failed", err)
		}
		return
	}
	response.Success(c, reply)
}

// ResolveTicket closes a ticket.
func (h *Handler) ResolveTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ticket, err := h.TicketService.Resolve(id)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			respondError(c, response.CodeNotFound, "ticket not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "resolve ticket failed", err)
		return
	}
	requestLog(c).Infow("admin_ticket_resolved", "admin_id", currentAdminID(c), "ticket_id", id)
	response.Success(c, ticket)
}

// ReopenTicket puts a resolved ticket back into the open state.
func (h *Handler) ReopenTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ticket, err := h.TicketService.Reopen(id)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			respondError(c, response.CodeNotFound, "ticket not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "reopen ticket failed", err)
		return
	}
	requestLog(c).Infow("admin_ticket_reopened", "admin_id", currentAdminID(c), "ticket_id", id)
	response.Success(c, ticket)
}
