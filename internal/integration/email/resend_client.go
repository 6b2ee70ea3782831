// Package email composes and sends operator notifications via Resend.
package email

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"

	"github.com/estate-ledger/backend/internal/application/adapter"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// WithBaseURL points the client at another Resend-compatible endpoint.
func (c *ResendClient) WithBaseURL(rawURL string) (*ResendClient, error) {
	if !strings.HasSuffix(rawURL, "/") {
		rawURL += "/"
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid resend base url: %w", err)
	}
	c.client.BaseURL = u
	return c, nil
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	to := input.To
	if input.Name != "" {
		to = fmt.Sprintf("%s <%s>", input.Name, input.To)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{to},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, classifySendError(err)
	}

	return &adapter.SendEmailResult{
		ResendID: resp.Id,
	}, nil
}

// classifySendError separates rejections a retry cannot fix (401, 403, 422)
// from transient failures (429, 5xx, network).
func classifySendError(err error) error {
	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{"401", "403", "422", "unauthorized", "forbidden", "validation", "invalid", "bad request"} {
		if strings.Contains(msg, pattern) {
			return domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"permanent email failure",
				fmt.Errorf("%w: %w", domainerror.ErrPermanentEmailFailure, err),
			)
		}
	}
	return domainerror.NewEmailError(
		domainerror.ErrCodeTemporaryEmailFailure,
		"temporary email failure",
		fmt.Errorf("%w: %w", domainerror.ErrTemporaryEmailFailure, err),
	)
}

// RecordingSender records messages instead of sending them. It backs the
// integration suite and local runs without a Resend key.
type RecordingSender struct {
	mu      sync.Mutex
	sent    []adapter.SendEmailInput
	failErr error
}

// NewRecordingSender creates a new recording sender.
func NewRecordingSender() *RecordingSender {
	return &RecordingSender{}
}

// Send records the message, or fails with the configured error.
func (r *RecordingSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failErr != nil {
		return nil, classifySendError(r.failErr)
	}

	r.sent = append(r.sent, input)
	return &adapter.SendEmailResult{
		ResendID: fmt.Sprintf("recorded-%d", len(r.sent)),
	}, nil
}

// Sent returns a copy of the recorded messages.
func (r *RecordingSender) Sent() []adapter.SendEmailInput {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]adapter.SendEmailInput(nil), r.sent...)
}

// FailWith makes subsequent sends fail with err. A nil err clears the failure.
func (r *RecordingSender) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failErr = err
}

// Reset clears recorded messages and any configured failure.
func (r *RecordingSender) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
	r.failErr = nil
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*RecordingSender)(nil)
)
