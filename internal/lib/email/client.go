// Package email builds and sends the transactional emails fired by
// form submissions.
//
// Resend is the delivery provider. Message bodies are rendered from
// embedded HTML templates; html/template escaping keeps submitted field
// values from injecting markup into the rendered message.
//
// Every dispatch is best-effort: failures are logged and reported as
// false, never returned as errors, because the stored record is the
// source of truth and email must not abort the request that created it.
package email

import (
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/x67digital/site-api/internal/config"
)

// Sender is the raw message-sending capability behind the dispatcher.
type Sender interface {
	Send(from string, to []string, subject, html string) error
}

// ResendSender sends email through the Resend API.
type ResendSender struct {
	client *resend.Client
}

var _ Sender = (*ResendSender)(nil)

// NewResendSender creates a ResendSender with the API key from config.
func NewResendSender(cfg *config.Config) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(cfg.Email.ResendAPIKey),
	}
}

// Send submits a single email through Resend.
func (s *ResendSender) Send(from string, to []string, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    from,
		To:      to,
		Subject: subject,
		Html:    html,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
