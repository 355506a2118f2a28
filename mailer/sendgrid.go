package mailer

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridSender struct {
	apiKey string
	host   string
}

func NewSendGridSender(apiKey string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, host: "https://api.sendgrid.com"}
}

// WithHost points the sender at another endpoint (tests, proxies).
func (s *SendGridSender) WithHost(host string) *SendGridSender {
	s.host = host
	return s
}

func (s *SendGridSender) Name() string { return "sendgrid" }

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	from, err := parseAddress(msg.From)
	if err != nil {
		return err
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(from)
	m.Subject = msg.Subject

	p := sgmail.NewPersonalization()
	for _, to := range msg.To {
		addr, err := parseAddress(to)
		if err != nil {
			return err
		}
		p.AddTos(addr)
	}
	m.AddPersonalizations(p)

	if msg.Text != "" {
		m.AddContent(sgmail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}
	if msg.IdempotencyKey != "" {
		m.SetHeader("X-Entity-Ref-ID", headerValue(msg.IdempotencyKey))
	}

	req := sendgrid.GetRequest(s.apiKey, "/v3/mail/send", s.host)
	req.Method = "POST"
	req.Body = sgmail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return &ProviderError{Provider: s.Name(), StatusCode: resp.StatusCode, Body: resp.Body}
	}
	return nil
}

func parseAddress(s string) (*sgmail.Email, error) {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return nil, fmt.Errorf("parse address %q: %w", s, err)
	}
	return sgmail.NewEmail(addr.Name, addr.Address), nil
}
