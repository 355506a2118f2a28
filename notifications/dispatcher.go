package notifications

import (
	"context"
	"errors"
	"fmt"
	"net"

	"portfolio/mailer"
	"portfolio/metrics"
	"portfolio/models"

	"go.uber.org/zap"
)

// Addresses is the fixed sender/recipient pair per record kind.
type Addresses struct {
	ReviewsFrom  string
	BookingsFrom string
	To           string
}

// Dispatcher sends best-effort submission emails. Its methods never return
// an error: every failure is logged and counted, never surfaced.
type Dispatcher struct {
	sender    mailer.Sender
	formatter *Formatter
	addrs     Addresses
	log       *zap.Logger
}

// NewDispatcher accepts a nil sender; notifications are then skipped.
func NewDispatcher(sender mailer.Sender, formatter *Formatter, addrs Addresses, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		sender:    sender,
		formatter: formatter,
		addrs:     addrs,
		log:       log,
	}
}

func (d *Dispatcher) ReviewCreated(ctx context.Context, r models.Review) {
	d.dispatch(ctx, "review", r.ID, d.addrs.ReviewsFrom, func() (Email, error) {
		return d.formatter.Review(r)
	})
}

func (d *Dispatcher) BookingCreated(ctx context.Context, b models.Booking) {
	d.dispatch(ctx, "booking", b.ID, d.addrs.BookingsFrom, func() (Email, error) {
		return d.formatter.Booking(b)
	})
}

func (d *Dispatcher) dispatch(ctx context.Context, kind string, id uint, from string, compose func() (Email, error)) {
	log := d.log.With(zap.String("kind", kind), zap.Uint("record_id", id))

	if d.sender == nil || d.addrs.To == "" {
		log.Warn(fmt.Sprintf("Mail provider not configured. %s %d created but email not sent.", kind, id))
		metrics.IncrementNotification(kind, metrics.OutcomeSkipped)
		return
	}

	defer func() {
		if p := recover(); p != nil {
			log.Error("Unexpected panic sending email; record was saved successfully",
				zap.Any("panic", p),
			)
			metrics.IncrementNotification(kind, metrics.OutcomeFailed)
		}
	}()

	email, err := compose()
	if err != nil {
		log.Error("Failed to compose email; record was saved successfully", zap.Error(err))
		metrics.IncrementNotification(kind, metrics.OutcomeFailed)
		return
	}
	log = log.With(zap.String("ref", email.Reference), zap.String("provider", d.sender.Name()))

	err = d.sender.Send(ctx, mailer.Message{
		From:           from,
		To:             []string{d.addrs.To},
		Subject:        email.Subject,
		Text:           email.Text,
		HTML:           email.HTML,
		IdempotencyKey: fmt.Sprintf("%s-%d", email.Reference, id),
	})
	if err != nil {
		log.Error(classify(err)+" sending email; record was saved successfully but email notification failed",
			zap.Error(err),
		)
		metrics.IncrementNotification(kind, metrics.OutcomeFailed)
		return
	}

	log.Info("Email notification sent successfully")
	metrics.IncrementNotification(kind, metrics.OutcomeSent)
}

func classify(err error) string {
	var perr *mailer.ProviderError
	var nerr net.Error
	switch {
	case errors.As(err, &perr):
		return "Provider API error"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled), errors.As(err, &nerr):
		return "Network error"
	default:
		return "Unexpected error"
	}
}
