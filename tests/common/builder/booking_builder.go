//go:build unit || e2e

package builder

import (
	"time"

	"band-booking/internal/domain/booking"
	reqdto "band-booking/internal/handler/dto/request"
	"band-booking/internal/usecase/commands"
)

type BookingRequestBuilder struct {
	ContactName        string
	ContactPhone       string
	ContactEmail       string
	EventType          string
	Duration           float64
	VenueName          string
	VenueAddress       string
	ExpectedAttendance string
	BudgetRange        string
	SoundSystem        string
	StageSize          string
	EventDescription   string
	ReferralSource     string
	Date               string
	Time               string
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	return &BookingRequestBuilder{
		ContactName:        "Jane Smith",
		ContactPhone:       "(555) 123-4567",
		ContactEmail:       "jane@example.com",
		EventType:          "wedding",
		Duration:           4,
		VenueName:          "The Grand Hall",
		VenueAddress:       "123 Main Street, Springfield",
		ExpectedAttendance: "100-200",
		BudgetRange:        "2000-3000",
		SoundSystem:        "yes",
		StageSize:          "medium",
		EventDescription:   "Outdoor wedding reception with dancing after dinner.",
		ReferralSource:     "google",
		Date:               "2025-06-15",
		Time:               "14:00",
	}
}

func (b *BookingRequestBuilder) With(mutate func(*BookingRequestBuilder)) *BookingRequestBuilder {
	mutate(b)
	return b
}

func (b *BookingRequestBuilder) WithSchedule(date, at string) *BookingRequestBuilder {
	b.Date = date
	b.Time = at
	return b
}

func (b *BookingRequestBuilder) WithDuration(hours float64) *BookingRequestBuilder {
	b.Duration = hours
	return b
}

func (b *BookingRequestBuilder) WithContact(phone, email string) *BookingRequestBuilder {
	b.ContactPhone = phone
	b.ContactEmail = email
	return b
}

func (b *BookingRequestBuilder) AsMinimal() *BookingRequestBuilder {
	b.ContactPhone = ""
	b.ExpectedAttendance = ""
	b.BudgetRange = ""
	b.SoundSystem = ""
	b.StageSize = ""
	b.ReferralSource = ""
	return b
}

// Build methods
func (b *BookingRequestBuilder) BuildDomain() booking.Request {
	return booking.Request{
		ContactName:        b.ContactName,
		ContactPhone:       b.ContactPhone,
		ContactEmail:       b.ContactEmail,
		EventType:          b.EventType,
		Duration:           b.Duration,
		VenueName:          b.VenueName,
		VenueAddress:       b.VenueAddress,
		ExpectedAttendance: b.ExpectedAttendance,
		BudgetRange:        b.BudgetRange,
		SoundSystem:        b.SoundSystem,
		StageSize:          b.StageSize,
		EventDescription:   b.EventDescription,
		ReferralSource:     b.ReferralSource,
		Date:               b.Date,
		Time:               b.Time,
	}
}

func (b *BookingRequestBuilder) BuildRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ContactName:        b.ContactName,
		ContactPhone:       b.ContactPhone,
		ContactEmail:       b.ContactEmail,
		EventType:          b.EventType,
		Duration:           b.Duration,
		VenueName:          b.VenueName,
		VenueAddress:       b.VenueAddress,
		ExpectedAttendance: b.ExpectedAttendance,
		BudgetRange:        b.BudgetRange,
		SoundSystem:        b.SoundSystem,
		StageSize:          b.StageSize,
		EventDescription:   b.EventDescription,
		ReferralSource:     b.ReferralSource,
		Date:               b.Date,
		Time:               b.Time,
	}
}

func (b *BookingRequestBuilder) BuildConfirmation(eventID string, loc *time.Location) *commands.BookingConfirmation {
	date, _ := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, loc)
	end := date.Add(time.Duration(b.Duration * float64(time.Hour)))
	return &commands.BookingConfirmation{
		BookingID: eventID,
		Date:      b.Date,
		Time:      b.Time,
		Duration:  b.Duration,
		EventType: b.EventType,
		Event: booking.Event{
			ID:       eventID,
			Summary:  b.EventType + " - " + b.ContactName,
			Location: b.VenueAddress,
			Start:    date,
			End:      end,
			TimeZone: loc.String(),
		},
	}
}
