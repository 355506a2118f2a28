package mailer

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

const resendBaseURL = "https://api.resend.com"

type ResendSender struct {
	client *resty.Client
}

func NewResendSender(apiKey string, timeout time.Duration) *ResendSender {
	client := resty.New().
		SetBaseURL(resendBaseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &ResendSender{client: client}
}

// WithBaseURL points the sender at another endpoint (tests, proxies).
func (s *ResendSender) WithBaseURL(url string) *ResendSender {
	s.client.SetBaseURL(url)
	return s
}

func (s *ResendSender) Name() string { return "resend" }

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
	HTML    string   `json:"html,omitempty"`
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	req := s.client.R().
		SetContext(ctx).
		SetBody(resendRequest{
			From:    msg.From,
			To:      msg.To,
			Subject: msg.Subject,
			Text:    msg.Text,
			HTML:    msg.HTML,
		})
	if msg.IdempotencyKey != "" {
		req.SetHeader("Idempotency-Key", msg.IdempotencyKey)
	}

	resp, err := req.Post("/emails")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &ProviderError{Provider: s.Name(), StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}
