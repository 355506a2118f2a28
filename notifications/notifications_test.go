package notifications

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"portfolio/mailer"
	"portfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/datatypes"
)

type fakeSender struct {
	sent  []mailer.Message
	err   error
	panic bool
}

func (f *fakeSender) Name() string { return "fake" }

func (f *fakeSender) Send(ctx context.Context, msg mailer.Message) error {
	if f.panic {
		panic("provider exploded")
	}
	f.sent = append(f.sent, msg)
	return f.err
}

func strPtr(v string) *string { return &v }

var created = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func sampleReview() models.Review {
	return models.Review{ID: 42, CreatedAt: created, Name: "A", Role: "CTO", Company: "X", Rating: 5, Review: "Great <b>work</b>"}
}

func sampleBooking() models.Booking {
	date := datatypes.Date(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	clock := datatypes.NewTime(14, 30, 0, 0)
	return models.Booking{
		ID:                 7,
		CreatedAt:          created,
		Name:               "Grace",
		Email:              "grace@example.com",
		Phone:              "+1 555 0100",
		ProjectType:        "web-app",
		ProjectDescription: "A site",
		Timeline:           "weird-timeline",
		Budget:             strPtr("5k-10k"),
		PreferredContact:   "video",
		PreferredDate:      &date,
		PreferredTime:      &clock,
	}
}

func TestLabelTableDisplay(t *testing.T) {
	labels := DefaultLabels()

	assert.Equal(t, "Web Application", labels.ProjectType.Display("web-app"))
	assert.Equal(t, "6+ Months", labels.Timeline.Display("6-months-plus"))
	assert.Equal(t, "Prefer to discuss", labels.Budget.Display("discuss"))
	assert.Equal(t, "In-Person Meeting", labels.Contact.Display("meeting"))
	assert.Equal(t, "carrier-pigeon", labels.Contact.Display("carrier-pigeon"))
}

func TestDefaultLabelsAreIndependentCopies(t *testing.T) {
	a := DefaultLabels()
	a.ProjectType["web-app"] = "changed"

	assert.Equal(t, "Web Application", DefaultLabels().ProjectType.Display("web-app"))
}

func TestFormatterReview(t *testing.T) {
	f := NewFormatter(DefaultLabels())

	email, err := f.Review(sampleReview())
	require.NoError(t, err)

	assert.Equal(t, "New Client Review - Rating: 5/5", email.Subject)
	assert.Equal(t, "REV-20260314150926", email.Reference)
	assert.Contains(t, email.Text, "Email: N/A\n")
	assert.Contains(t, email.Text, "Rating: 5/5")
	assert.Contains(t, email.Text, "Great <b>work</b>")
	assert.Contains(t, email.HTML, "REF #REV-20260314150926")
	assert.Contains(t, email.HTML, "Great &lt;b&gt;work&lt;/b&gt;")
	assert.Contains(t, email.HTML, "★★★★★")
}

func TestFormatterBooking(t *testing.T) {
	f := NewFormatter(DefaultLabels())

	email, err := f.Booking(sampleBooking())
	require.NoError(t, err)

	assert.Equal(t, "New Client Booking: web-app", email.Subject)
	assert.Equal(t, "BK-20260314150926", email.Reference)
	for _, want := range []string{
		"Project Type: Web Application",
		"Timeline: weird-timeline",
		"Budget: $5,000 - $10,000",
		"Preferred Contact: Video Call",
		"Preferred Date: April 01, 2026",
		"Preferred Time: 02:30 PM",
		"Company: Not specified",
	} {
		assert.Contains(t, email.Text, want)
	}
	assert.NotContains(t, email.Text, "Additional Notes")
	assert.Contains(t, email.HTML, "Web Application")
	assert.Contains(t, email.HTML, "$5,000 - $10,000")
}

func TestFormatterBookingSubjectIsOneLine(t *testing.T) {
	f := NewFormatter(DefaultLabels())
	b := sampleBooking()
	b.ProjectType = "web-app\r\nBcc: victim@example.org"

	email, err := f.Booking(b)
	require.NoError(t, err)

	assert.Equal(t, "New Client Booking: web-app Bcc: victim@example.org", email.Subject)
	assert.NotContains(t, email.Subject, "\n")
	assert.NotContains(t, email.Subject, "\r")
}

func TestFormatterBookingOptionalsMissing(t *testing.T) {
	f := NewFormatter(DefaultLabels())
	b := sampleBooking()
	b.Budget, b.PreferredDate, b.PreferredTime = nil, nil, nil
	b.AdditionalNotes = strPtr("Call after lunch")

	email, err := f.Booking(b)
	require.NoError(t, err)

	assert.Contains(t, email.Text, "Budget: Not specified")
	assert.Contains(t, email.Text, "Preferred Date: Not specified")
	assert.Contains(t, email.Text, "Preferred Time: Not specified")
	assert.Contains(t, email.Text, "Additional Notes:\nCall after lunch")
	assert.Contains(t, email.HTML, "Call after lunch")
}

func TestFormatterReferenceFallsBackToNow(t *testing.T) {
	f := NewFormatter(DefaultLabels())
	f.now = func() time.Time { return created }

	assert.Equal(t, "REV-20260314150926", f.Reference("REV", time.Time{}))
}

func newObservedDispatcher(sender mailer.Sender, to string) (*Dispatcher, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := NewDispatcher(sender, NewFormatter(DefaultLabels()), Addresses{
		ReviewsFrom:  "Portfolio Reviews <noreply@example.com>",
		BookingsFrom: "Portfolio Bookings <noreply@example.com>",
		To:           to,
	}, zap.New(core))
	return d, logs
}

func TestDispatcherSends(t *testing.T) {
	sender := &fakeSender{}
	d, logs := newObservedDispatcher(sender, "owner@example.com")

	d.ReviewCreated(context.Background(), sampleReview())
	d.BookingCreated(context.Background(), sampleBooking())

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "Portfolio Reviews <noreply@example.com>", sender.sent[0].From)
	assert.Equal(t, []string{"owner@example.com"}, sender.sent[0].To)
	assert.Equal(t, "REV-20260314150926-42", sender.sent[0].IdempotencyKey)
	assert.Equal(t, "BK-20260314150926-7", sender.sent[1].IdempotencyKey)
	assert.Equal(t, "Portfolio Bookings <noreply@example.com>", sender.sent[1].From)
	assert.Equal(t, 2, logs.FilterMessage("Email notification sent successfully").Len())
}

func TestDispatcherSkipsWhenUnconfigured(t *testing.T) {
	t.Run("no sender", func(t *testing.T) {
		d, logs := newObservedDispatcher(nil, "owner@example.com")

		assert.NotPanics(t, func() { d.ReviewCreated(context.Background(), sampleReview()) })
		entries := logs.FilterLevelExact(zapcore.WarnLevel).All()
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Message, "review 42 created but email not sent")
	})

	t.Run("no recipient", func(t *testing.T) {
		sender := &fakeSender{}
		d, _ := newObservedDispatcher(sender, "")

		d.BookingCreated(context.Background(), sampleBooking())
		assert.Empty(t, sender.sent)
	})
}

func TestDispatcherSwallowsFailures(t *testing.T) {
	tests := []struct {
		name    string
		sender  *fakeSender
		message string
	}{
		{name: "provider error", sender: &fakeSender{err: &mailer.ProviderError{Provider: "fake", StatusCode: 500}}, message: "Provider API error"},
		{name: "network error", sender: &fakeSender{err: context.DeadlineExceeded}, message: "Network error"},
		{name: "unexpected error", sender: &fakeSender{err: errors.New("boom")}, message: "Unexpected error"},
		{name: "panic", sender: &fakeSender{panic: true}, message: "Unexpected panic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, logs := newObservedDispatcher(tt.sender, "owner@example.com")

			assert.NotPanics(t, func() { d.ReviewCreated(context.Background(), sampleReview()) })

			entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
			require.Len(t, entries, 1)
			assert.True(t, strings.HasPrefix(entries[0].Message, tt.message), entries[0].Message)
			assert.EqualValues(t, 42, entries[0].ContextMap()["record_id"])
		})
	}
}

func TestDispatcherKeysRecordsWithinOneSecond(t *testing.T) {
	var (
		mu   sync.Mutex
		keys []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		mu.Unlock()
		w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	sender := mailer.NewResendSender("re_test", time.Second).WithBaseURL(srv.URL)
	d, _ := newObservedDispatcher(sender, "owner@example.com")

	first := sampleReview()
	first.ID = 1
	second := sampleReview()
	second.ID = 2
	second.CreatedAt = first.CreatedAt.Add(500 * time.Millisecond)

	d.ReviewCreated(context.Background(), first)
	d.ReviewCreated(context.Background(), second)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
	assert.Equal(t, []string{"REV-20260314150926-1", "REV-20260314150926-2"}, keys)
}
