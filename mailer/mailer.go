// Package mailer delivers composed messages through one of the supported
// transactional email providers.
package mailer

import (
	"context"
	"fmt"

	"portfolio/config"
)

// Message is a fully composed email. From may carry a display name
// ("Portfolio Reviews <noreply@example.com>").
type Message struct {
	From    string
	To      []string
	Subject string
	Text    string
	HTML    string
	// IdempotencyKey must be unique per record. Providers that support it
	// dedupe retries on it; the others send it as X-Entity-Ref-ID.
	IdempotencyKey string
}

// Sender hands a message to a provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}

// ProviderError is a non-success answer from the provider API.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s responded %d: %s", e.Provider, e.StatusCode, e.Body)
}

// New returns the sender selected by MAIL_PROVIDER, or nil when that
// provider has no credential configured.
func New(cfg *config.Config) (Sender, error) {
	switch cfg.MailProvider {
	case "resend", "":
		if cfg.ResendAPIKey == "" {
			return nil, nil
		}
		return NewResendSender(cfg.ResendAPIKey, cfg.MailTimeout), nil
	case "sendgrid":
		if cfg.SendGridAPIKey == "" {
			return nil, nil
		}
		return NewSendGridSender(cfg.SendGridAPIKey), nil
	case "smtp":
		if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
			return nil, nil
		}
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword), nil
	default:
		return nil, fmt.Errorf("unsupported MAIL_PROVIDER %q", cfg.MailProvider)
	}
}
