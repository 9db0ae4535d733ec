package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/paikari-bazar/internal/logger"
	"github.com/paikari-bazar/internal/provider"
	"github.com/paikari-bazar/internal/queue"
	"github.com/paikari-bazar/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer handles the queued email notifications.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task handlers on the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmationEmail, c.handleOrderConfirmationEmail)
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskTicketReplyEmail, c.handleTicketReplyEmail)
}

func (c *Consumer) handleOrderConfirmationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_confirmation_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiverEmail := strings.TrimSpace(order.CustomerEmail)
	if receiverEmail == "" {
		logger.Debugw("worker_order_confirmation_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_confirmation_email_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	var bkashNumber string
	if c.SettingService != nil {
		number, err := c.SettingService.GetBkashNumber()
		if err != nil {
			logger.Warnw("worker_order_confirmation_email_bkash_number_failed", "order_id", order.ID, "error", err)
		} else {
			bkashNumber = number
		}
	}
	lines := make([]service.OrderConfirmationEmailLine, 0, len(order.Items))
	for _, line := range order.Items {
		lines = append(lines, service.OrderConfirmationEmailLine{
			Name:      line.ItemName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	input := service.OrderConfirmationEmailInput{
		OrderNo:       order.OrderNo,
		CustomerName:  order.CustomerName,
		Lines:         lines,
		TotalAmount:   order.TotalAmount,
		AdvanceAmount: order.AdvanceAmount,
		BkashNumber:   bkashNumber,
		TransactionID: order.TransactionID,
	}
	if err := c.EmailService.SendOrderConfirmationEmail(receiverEmail, input); err != nil {
		logger.Warnw("worker_order_confirmation_email_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", receiverEmail,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiverEmail := strings.TrimSpace(order.CustomerEmail)
	if receiverEmail == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_status_email_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	input := service.OrderStatusEmailInput{
		OrderNo:     order.OrderNo,
		Status:      status,
		TotalAmount: order.TotalAmount,
	}
	if err := c.EmailService.SendOrderStatusEmail(receiverEmail, input); err != nil {
		logger.Warnw("worker_order_status_email_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", receiverEmail,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleTicketReplyEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_ticket_reply_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.TicketReplyEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_ticket_reply_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.TicketID == 0 {
		logger.Debugw("worker_ticket_reply_email_skip_invalid_payload", "ticket_id", payload.TicketID)
		return nil
	}
	ticket, err := c.TicketRepo.GetByID(payload.TicketID)
	if err != nil {
		logger.Warnw("worker_ticket_reply_email_fetch_ticket_failed", "ticket_id", payload.TicketID, "error", err)
		return err
	}
	if ticket == nil {
		logger.Debugw("worker_ticket_reply_email_skip_ticket_not_found", "ticket_id", payload.TicketID)
		return nil
	}
	var replyBody string
	for _, reply := range ticket.Replies {
		if reply.ID == payload.ReplyID {
			replyBody = reply.Body
			break
		}
	}
	if replyBody == "" {
		logger.Debugw("worker_ticket_reply_email_skip_reply_not_found", "ticket_id", ticket.ID, "reply_id", payload.ReplyID)
		return nil
	}
	user, err := c.UserRepo.GetByID(ticket.UserID)
	if err != nil {
		logger.Warnw("worker_ticket_reply_email_fetch_user_failed", "ticket_id", ticket.ID, "user_id", ticket.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_ticket_reply_email_skip_empty_receiver", "ticket_id", ticket.ID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_ticket_reply_email_skip_email_service_nil", "ticket_id", ticket.ID)
		return nil
	}
	if err := c.EmailService.SendTicketReplyEmail(strings.TrimSpace(user.Email), ticket.Subject, replyBody); err != nil {
		logger.Warnw("worker_ticket_reply_email_send_failed",
			"ticket_id", ticket.ID,
			"reply_id", payload.ReplyID,
			"error", err,
		)
		return err
	}
	return nil
}
