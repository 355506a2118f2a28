package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Booking struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	Name               string          `gorm:"type:varchar(200);not null" json:"name"`
	Email              string          `gorm:"type:varchar(254);not null" json:"email"`
	Phone              string          `gorm:"type:varchar(20);not null" json:"phone"`
	Company            *string         `gorm:"type:varchar(200)" json:"company"`
	ProjectType        string          `gorm:"type:varchar(100);not null" json:"project_type"`
	ProjectDescription string          `gorm:"type:text;not null" json:"project_description"`
	Timeline           string          `gorm:"type:varchar(50);not null" json:"timeline"`
	Budget             *string         `gorm:"type:varchar(50)" json:"budget"`
	PreferredContact   string          `gorm:"type:varchar(50);not null" json:"preferred_contact"`
	PreferredDate      *datatypes.Date `json:"preferred_date"`
	PreferredTime      *datatypes.Time `json:"preferred_time"`
	AdditionalNotes    *string         `gorm:"type:text" json:"additional_notes"`
}

func (Booking) TableName() string {
	return "bookings"
}

// DateLayout is the wire format of PreferredDate.
const DateLayout = "2006-01-02"

// MarshalJSON renders PreferredDate as a plain calendar date instead of the
// RFC 3339 timestamp datatypes.Date produces on its own.
func (b Booking) MarshalJSON() ([]byte, error) {
	type alias Booking
	out := struct {
		alias
		PreferredDate *string `json:"preferred_date"`
		PreferredTime *string `json:"preferred_time"`
	}{alias: alias(b)}

	if b.PreferredDate != nil {
		s := time.Time(*b.PreferredDate).Format(DateLayout)
		out.PreferredDate = &s
	}
	if b.PreferredTime != nil {
		s := b.PreferredTime.String()
		out.PreferredTime = &s
	}
	return json.Marshal(out)
}
