package service

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/paikari-bazar/internal/config"
	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"
)

// EmailService sends transactional mail over SMTP.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates an email service.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SetConfig swaps the runtime mail configuration.
func (s *EmailService) SetConfig(cfg *config.EmailConfig) {
	if cfg == nil {
		return
	}
	s.cfg = cfg
}

// OrderConfirmationEmailLine is one purchased line in the confirmation mail.
type OrderConfirmationEmailLine struct {
	Name      string
	Quantity  int
	UnitPrice models.Money
}

// OrderConfirmationEmailInput carries the fields of the confirmation mail.
type OrderConfirmationEmailInput struct {
	OrderNo       string
	CustomerName  string
	Lines         []OrderConfirmationEmailLine
	TotalAmount   models.Money
	AdvanceAmount models.Money
	BkashNumber   string
	TransactionID string
}

// SendOrderConfirmationEmail tells the buyer their order was received
// and that the advance will be verified against the bKash statement.
func (s *EmailService) SendOrderConfirmationEmail(toEmail string, input OrderConfirmationEmailInput) error {
	subject := fmt.Sprintf("Order %s received", input.OrderNo)
	return s.sendTextEmail(toEmail, subject, buildOrderConfirmationBody(input))
}

func buildOrderConfirmationBody(input OrderConfirmationEmailInput) string {
	var b strings.Builder
	name := strings.TrimSpace(input.CustomerName)
	if name == "" {
		name = "customer"
	}
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	fmt.Fprintf(&b, "We received your order %s.\n\n", input.OrderNo)
	for _, line := range input.Lines {
		fmt.Fprintf(&b, "  %s x%d @ %s BDT\n", line.Name, line.Quantity, line.UnitPrice.String())
	}
	if len(input.Lines) > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Order total: %s BDT\n", input.TotalAmount.String())
	fmt.Fprintf(&b, "Advance paid: %s BDT\n", input.AdvanceAmount.String())
	if strings.TrimSpace(input.TransactionID) != "" {
		fmt.Fprintf(&b, "bKash transaction id: %s\n", input.TransactionID)
	}
	b.WriteString("\nWe will verify the advance payment and confirm your order shortly.\n")
	if strings.TrimSpace(input.BkashNumber) != "" {
		fmt.Fprintf(&b, "Payments are collected on bKash number %s.\n", input.BkashNumber)
	}
	return b.String()
}

// OrderStatusEmailInput carries the fields of the status change mail.
type OrderStatusEmailInput struct {
	OrderNo     string
	Status      string
	TotalAmount models.Money
}

// SendOrderStatusEmail notifies the buyer of an order status change.
func (s *EmailService) SendOrderStatusEmail(toEmail string, input OrderStatusEmailInput) error {
	label := orderStatusLabel(input.Status)
	subject := fmt.Sprintf("Order %s is now %s", input.OrderNo, label)
	var b strings.Builder
	fmt.Fprintf(&b, "Your order %s (total %s BDT) is now %s.\n", input.OrderNo, input.TotalAmount.String(), label)
	switch strings.ToLower(strings.TrimSpace(input.Status)) {
	case constants.OrderStatusConfirmed:
		b.WriteString("\nYour advance payment has been verified.\n")
	case constants.OrderStatusCancelled:
		b.WriteString("\nIf you already paid an advance, our support team will contact you about the refund.\n")
	}
	return s.sendTextEmail(toEmail, subject, b.String())
}

// SendTicketReplyEmail notifies a user of a staff reply on their ticket.
func (s *EmailService) SendTicketReplyEmail(toEmail, ticketSubject, replyBody string) error {
	subject := fmt.Sprintf("New reply on your ticket: %s", ticketSubject)
	body := fmt.Sprintf("Our team replied to your ticket \"%s\":\n\n%s\n", ticketSubject, replyBody)
	return s.sendTextEmail(toEmail, subject, body)
}

// SendCustomEmail sends a test or free-form mail.
func (s *EmailService) SendCustomEmail(toEmail, subject, body string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = "SMTP configuration test"
	}
	body = strings.TrimSpace(body)
	if body == "" {
		body = "This is an SMTP test mail from Paikari Bazar. Delivery works."
	}
	return s.sendTextEmail(toEmail, subject, body)
}

func orderStatusLabel(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case constants.OrderStatusPending:
		return "pending"
	case constants.OrderStatusConfirmed:
		return "confirmed"
	case constants.OrderStatusProcessing:
		return "processing"
	case constants.OrderStatusCompleted:
		return "completed"
	case constants.OrderStatusCancelled:
		return "cancelled"
	default:
		return status
	}
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	from := buildFromAddress(s.cfg.From, s.cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if s.cfg.UseSSL {
		return normalizeEmailSendError(sendMailWithSSL(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg)))
	}
	if s.cfg.UseTLS {
		return normalizeEmailSendError(sendMailWithStartTLS(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg)))
	}
	return normalizeEmailSendError(sendMailPlain(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg)))
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendMailWithSSL(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailWithStartTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return err
	}

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailPlain(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func normalizeEmailSendError(err error) error {
	if err == nil {
		return nil
	}
	if isEmailRecipientRejected(err) {
		return ErrEmailRecipientRejected
	}
	return err
}

func isEmailRecipientRejected(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(strings.TrimSpace(err.Error()))
	if message == "" {
		return false
	}
	directKeywords := []string{
		"no such recipient",
		"no such user",
		"recipient not found",
		"recipient address rejected",
		"invalid recipient",
		"user unknown",
		"unknown user",
		"unknown mailbox",
		"mailbox unavailable",
	}
	for _, keyword := range directKeywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	if strings.Contains(message, "550") {
		hints := []string{"recipient", "user", "mailbox", "address", "rcpt"}
		for _, hint := range hints {
			if strings.Contains(message, hint) {
				return true
			}
		}
	}
	return false
}
