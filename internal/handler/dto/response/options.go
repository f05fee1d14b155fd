package response

import "band-booking/internal/domain/booking"

type BookingOptionsResponse struct {
	EventTypes           []booking.EventType       `json:"eventTypes"`
	DurationPackages     []booking.DurationPackage `json:"durationPackages"`
	ReferralSources      []string                  `json:"referralSources"`
	AdvanceBookingMonths int                       `json:"advanceBookingMonths"`
	TimeZone             string                    `json:"timezone"`
}
