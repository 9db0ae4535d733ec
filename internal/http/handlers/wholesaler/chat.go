package wholesaler

import (
	"errors"

	handlershared "github.com/paikari-bazar/internal/http/handlers/shared"
	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// ListConversations returns the wholesaler's chat threads.
func (h *Handler) ListConversations(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	conversations, err := h.ChatService.ListForWholesaler(wholesalerID)
	if err != nil {
		respondError(c, response.CodeInternal, "list conversations failed", err)
		return
	}
	response.Success(c, conversations)
}

// ListMessages returns a message page and marks the customer's
// messages as read.
func (h *Handler) ListMessages(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	messages, total, err := h.ChatService.GetMessages(id, wholesalerID, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			respondError(c, response.CodeNotFound, "conversation not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "list messages failed", err)
		return
	}
	response.SuccessWithPage(c, messages, handlershared.BuildPagination(page, pageSize, total))
}

// SendMessageRequest is the chat message payload.
type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// SendMessage appends a message to one of the wholesaler's threads.
func (h *Handler) SendMessage(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	message, err := h.ChatService.SendMessage(id, wholesalerID, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConversationNotFound):
			respondError(c, response.CodeNotFound, "conversation not found", nil)
		case errors.Is(err, service.ErrMessageEmpty):
			respondError(c, response.CodeBadRequest, "message body is required", nil)
		default:
			respondError(c, response.CodeInternal, "send message failed", err)
		}
		return
	}
	response.Success(c, message)
}
