package queue

import (
	"encoding/json"

	"github.com/paikari-bazar/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmationEmail notifies a buyer that their order was received.
	TaskOrderConfirmationEmail = constants.TaskOrderConfirmationEmail
	// TaskOrderStatusEmail notifies a buyer of an order status change.
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
	// TaskTicketReplyEmail notifies a user of a staff reply on their ticket.
	TaskTicketReplyEmail = constants.TaskTicketReplyEmail
)

// OrderConfirmationEmailPayload carries the order id for the confirmation mail.
type OrderConfirmationEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// OrderStatusEmailPayload carries the order id and the status it moved to.
type OrderStatusEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// TicketReplyEmailPayload carries the ticket and reply ids for the notice.
type TicketReplyEmailPayload struct {
	TicketID uint `json:"ticket_id"`
	ReplyID  uint `json:"reply_id"`
}

// NewOrderConfirmationEmailTask creates an order confirmation email task.
func NewOrderConfirmationEmailTask(payload OrderConfirmationEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmationEmail, body), nil
}

// NewOrderStatusEmailTask creates an order status email task.
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusEmail, body), nil
}

// NewTicketReplyEmailTask creates a ticket reply email task.
func NewTicketReplyEmailTask(payload TicketReplyEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTicketReplyEmail, body), nil
}
