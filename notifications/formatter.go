package notifications

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"portfolio/models"
)

//go:embed templates/*
var templateFS embed.FS

var (
	reviewHTML  = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/layout.html", "templates/review.html"))
	bookingHTML = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/layout.html", "templates/booking.html"))
	reviewText  = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/review.txt"))
	bookingText = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/booking.txt"))
)

const (
	notSpecified = "Not specified"
	stampLayout  = "20060102150405"
)

// Email is a composed notification before addressing.
type Email struct {
	Subject   string
	Text      string
	HTML      string
	Reference string
}

// Formatter renders notification emails. Coded booking fields go through
// the label tables it was built with.
type Formatter struct {
	labels Labels
	now    func() time.Time
}

func NewFormatter(labels Labels) *Formatter {
	return &Formatter{labels: labels, now: time.Now}
}

// Reference builds the REF stamp shown in the email and logs, e.g.
// REV-20260101093000. Records not yet stamped by the store fall back to now.
func (f *Formatter) Reference(prefix string, createdAt time.Time) string {
	if createdAt.IsZero() {
		createdAt = f.now()
	}
	return prefix + "-" + createdAt.UTC().Format(stampLayout)
}

type layoutData struct {
	Brand     string
	Banner    string
	Title     string
	Reference string
}

type reviewData struct {
	layoutData
	Review models.Review
	Email  string
	Stars  string
}

func (f *Formatter) Review(r models.Review) (Email, error) {
	data := reviewData{
		layoutData: layoutData{
			Brand:     "PORTFOLIO REVIEWS",
			Banner:    "NEW CLIENT REVIEW SUBMISSION",
			Title:     "Client Review Documentation",
			Reference: f.Reference("REV", r.CreatedAt),
		},
		Review: r,
		Email:  "N/A",
		Stars:  stars(r.Rating),
	}
	if r.Email != nil && *r.Email != "" {
		data.Email = *r.Email
	}

	email := Email{
		Subject:   fmt.Sprintf("New Client Review - Rating: %d/5", r.Rating),
		Reference: data.Reference,
	}
	return render(email, reviewText, reviewHTML, data)
}

type bookingData struct {
	layoutData
	Booking     models.Booking
	Company     string
	ProjectType string
	Timeline    string
	Budget      string
	Contact     string
	Date        string
	Time        string
	Notes       string
}

func (f *Formatter) Booking(b models.Booking) (Email, error) {
	data := bookingData{
		layoutData: layoutData{
			Brand:     "PORTFOLIO BOOKINGS",
			Banner:    "NEW CLIENT BOOKING REQUEST",
			Title:     "Client Booking Request",
			Reference: f.Reference("BK", b.CreatedAt),
		},
		Booking:     b,
		Company:     orNotSpecified(b.Company),
		ProjectType: f.labels.ProjectType.Display(b.ProjectType),
		Timeline:    f.labels.Timeline.Display(b.Timeline),
		Budget:      notSpecified,
		Contact:     f.labels.Contact.Display(b.PreferredContact),
		Date:        notSpecified,
		Time:        notSpecified,
	}
	if b.Budget != nil && *b.Budget != "" {
		data.Budget = f.labels.Budget.Display(*b.Budget)
	}
	if b.PreferredDate != nil {
		data.Date = time.Time(*b.PreferredDate).Format("January 02, 2006")
	}
	if b.PreferredTime != nil {
		data.Time = time.Time{}.Add(time.Duration(*b.PreferredTime)).Format("03:04 PM")
	}
	if b.AdditionalNotes != nil {
		data.Notes = *b.AdditionalNotes
	}

	email := Email{
		Subject:   "New Client Booking: " + singleLine(b.ProjectType),
		Reference: data.Reference,
	}
	return render(email, bookingText, bookingHTML, data)
}

func render(email Email, text *texttemplate.Template, html *htmltemplate.Template, data any) (Email, error) {
	var buf bytes.Buffer
	if err := text.Execute(&buf, data); err != nil {
		return Email{}, fmt.Errorf("render text body: %w", err)
	}
	email.Text = buf.String()

	buf.Reset()
	if err := html.ExecuteTemplate(&buf, "layout", data); err != nil {
		return Email{}, fmt.Errorf("render html body: %w", err)
	}
	email.HTML = buf.String()
	return email, nil
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// singleLine collapses every run of whitespace, line breaks included, into
// one space.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func orNotSpecified(s *string) string {
	if s == nil || *s == "" {
		return notSpecified
	}
	return *s
}
