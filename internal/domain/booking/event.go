package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"band-booking/internal/pkg/phone"
)

const (
	// EventColorID is the calendar palette entry used for gigs.
	EventColorID  = "9"
	bookingFooter = "Booked via Band Website"
	notSpecified  = "Not specified"
	sectionRule   = "━━━━━━━━━━━━━━━━━━━━"
)

// Reminder is a calendar notification sent before an event starts.
type Reminder struct {
	Method  string
	Minutes int
}

// DefaultReminders are one week and one day by email, two hours by popup.
var DefaultReminders = []Reminder{
	{Method: "email", Minutes: 7 * 24 * 60},
	{Method: "email", Minutes: 24 * 60},
	{Method: "popup", Minutes: 2 * 60},
}

// EventDraft is what gets written to the calendar for a booking. Times
// are instants; the timezone name travels alongside for display.
type EventDraft struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	TimeZone    string
	ColorID     string
	Reminders   []Reminder
}

// Event is a calendar event as reported back after creation.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	TimeZone    string
}

// NewEventDraft builds the calendar entry for a validated request
// occupying [start, end).
func NewEventDraft(req Request, start, end time.Time, loc *time.Location) EventDraft {
	return EventDraft{
		Summary:     fmt.Sprintf("%s - %s", req.EventType, req.ContactName),
		Description: Describe(req),
		Location:    req.VenueAddress,
		Start:       start.In(loc),
		End:         end.In(loc),
		TimeZone:    loc.String(),
		ColorID:     EventColorID,
		Reminders:   DefaultReminders,
	}
}

// Confirm merges what the calendar echoed back with the draft, keeping
// local values for anything the calendar left out.
func (d EventDraft) Confirm(echo Event, now time.Time) Event {
	confirmed := echo
	if confirmed.ID == "" {
		confirmed.ID = "booking-" + strconv.FormatInt(now.UnixMilli(), 10)
	}
	if confirmed.Summary == "" {
		confirmed.Summary = d.Summary
	}
	if confirmed.Description == "" {
		confirmed.Description = d.Description
	}
	if confirmed.Location == "" {
		confirmed.Location = d.Location
	}
	if confirmed.Start.IsZero() {
		confirmed.Start = d.Start
	}
	if confirmed.End.IsZero() {
		confirmed.End = d.End
	}
	if confirmed.TimeZone == "" {
		confirmed.TimeZone = d.TimeZone
	}
	return confirmed
}

// Describe renders the request as the plain-text event body.
func Describe(req Request) string {
	var b strings.Builder

	section := func(title string, lines ...string) {
		b.WriteString(title + "\n" + sectionRule + "\n")
		for _, l := range lines {
			b.WriteString(l + "\n")
		}
		b.WriteString("\n")
	}

	section("CONTACT INFORMATION",
		"Name: "+req.ContactName,
		"Phone: "+orDefault(phone.Format(req.ContactPhone), notSpecified),
		"Email: "+orDefault(req.ContactEmail, notSpecified),
	)
	section("EVENT DETAILS",
		"Event Type: "+EventTypeLabel(req.EventType),
		"Duration: "+strconv.FormatFloat(req.Duration, 'f', -1, 64)+" hours",
		"Venue: "+req.VenueName,
		"Location: "+req.VenueAddress,
		"Expected Attendance: "+orDefault(req.ExpectedAttendance, notSpecified),
	)
	section("BUDGET & TECHNICAL",
		"Budget Range: "+orDefault(req.BudgetRange, notSpecified),
		"Sound System at Venue: "+orDefault(req.SoundSystem, "Unknown"),
		"Stage Size: "+orDefault(req.StageSize, notSpecified),
	)
	section("EVENT DESCRIPTION", req.EventDescription)
	section("REFERRAL",
		"How they found us: "+orDefault(req.ReferralSource, notSpecified),
	)
	b.WriteString(sectionRule + "\n" + bookingFooter)

	return b.String()
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
