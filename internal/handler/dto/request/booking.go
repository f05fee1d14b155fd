package request

import (
	"band-booking/internal/domain/booking"

	"github.com/jinzhu/copier"
)

// CreateBookingRequest has no binding tags: every field is checked by the
// booking validator so all failures are reported together.
type CreateBookingRequest struct {
	ContactName        string  `json:"contactName" example:"Jane Doe"`
	ContactPhone       string  `json:"contactPhone,omitempty" example:"(555) 123-4567"`
	ContactEmail       string  `json:"contactEmail,omitempty" example:"jane@example.com"`
	EventType          string  `json:"eventType" example:"wedding"`
	Duration           float64 `json:"duration" example:"4"`
	VenueName          string  `json:"venueName" example:"The Grand Hall"`
	VenueAddress       string  `json:"venueAddress" example:"123 Main St, Los Angeles, CA"`
	ExpectedAttendance string  `json:"expectedAttendance,omitempty" example:"150"`
	BudgetRange        string  `json:"budgetRange,omitempty" example:"$2000-$3000"`
	SoundSystem        string  `json:"soundSystem,omitempty" example:"yes"`
	StageSize          string  `json:"stageSize,omitempty" example:"medium"`
	EventDescription   string  `json:"eventDescription" example:"Outdoor reception with dinner and dancing"`
	ReferralSource     string  `json:"referralSource,omitempty" example:"Instagram"`
	Date               string  `json:"date" example:"2025-06-15"`
	Time               string  `json:"time" example:"14:00"`
}

func (r CreateBookingRequest) ToDomain() (booking.Request, error) {
	var req booking.Request
	if err := copier.Copy(&req, &r); err != nil {
		return booking.Request{}, err
	}
	return req, nil
}
