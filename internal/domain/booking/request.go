package booking

import (
	"strings"
	"time"
)

// Request is a gig booking as submitted by a client. Optional fields are
// empty when not provided.
type Request struct {
	ContactName        string  `json:"contactName" validate:"required,min=2"`
	ContactPhone       string  `json:"contactPhone" validate:"omitempty,phone10"`
	ContactEmail       string  `json:"contactEmail" validate:"omitempty,contactemail"`
	EventType          string  `json:"eventType" validate:"required"`
	Duration           float64 `json:"duration" validate:"gte=1,lte=12"`
	VenueName          string  `json:"venueName" validate:"required,min=2"`
	VenueAddress       string  `json:"venueAddress" validate:"required,min=10"`
	ExpectedAttendance string  `json:"expectedAttendance"`
	BudgetRange        string  `json:"budgetRange"`
	SoundSystem        string  `json:"soundSystem"`
	StageSize          string  `json:"stageSize"`
	EventDescription   string  `json:"eventDescription" validate:"required,min=20"`
	ReferralSource     string  `json:"referralSource"`
	Date               string  `json:"date" validate:"required"`
	Time               string  `json:"time" validate:"required"`
}

// DurationValue converts the hours in the request to a time.Duration.
func (r Request) DurationValue() time.Duration {
	return time.Duration(r.Duration * float64(time.Hour))
}

// Schedule parses the date and time of an already validated request.
func (r Request) Schedule() (CalendarDate, ClockTime, error) {
	date, err := ParseCalendarDate(r.Date)
	if err != nil {
		return CalendarDate{}, ClockTime{}, err
	}
	at, err := ParseClockTime(r.Time)
	if err != nil {
		return CalendarDate{}, ClockTime{}, err
	}
	return date, at, nil
}

// Trimmed returns a copy with surrounding whitespace removed from every
// text field.
func (r Request) Trimmed() Request {
	t := r
	for _, f := range []*string{
		&t.ContactName, &t.ContactPhone, &t.ContactEmail, &t.EventType,
		&t.VenueName, &t.VenueAddress, &t.ExpectedAttendance, &t.BudgetRange,
		&t.SoundSystem, &t.StageSize, &t.EventDescription, &t.ReferralSource,
		&t.Date, &t.Time,
	} {
		*f = strings.TrimSpace(*f)
	}
	return t
}
