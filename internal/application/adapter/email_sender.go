package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=email_sender.go -destination=mock/email_sender_mock.go -package=mock

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// OverdueDigestItem is one overdue payment listed in the digest.
type OverdueDigestItem struct {
	ProjectName  string
	CustomerName string
	UnitLabel    string
	PaymentType  string
	Amount       decimal.Decimal
	DueDate      time.Time
	DaysOverdue  int
}

// OverdueDigest is the summary of overdue installments mailed to the operator.
type OverdueDigest struct {
	GeneratedAt time.Time
	Items       []OverdueDigestItem
	Total       decimal.Decimal
}

// EmailService defines the interface for composing and sending operator notifications.
type EmailService interface {
	// Enabled reports whether a provider and recipient are configured.
	Enabled() bool

	// SendOverdueDigest renders the digest and mails it to the operator.
	SendOverdueDigest(ctx context.Context, digest OverdueDigest) (*SendEmailResult, error)
}
