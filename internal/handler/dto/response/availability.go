package response

import (
	"band-booking/internal/domain/booking"
	"band-booking/internal/usecase/queries"
)

type SlotResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	Date     string         `json:"date"`
	Duration int            `json:"duration"`
	Slots    []SlotResponse `json:"slots"`
}

func FromDayAvailability(d *queries.DayAvailability) AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(d.Slots))
	for _, s := range d.Slots {
		slots = append(slots, fromTimeSlot(s))
	}
	return AvailabilityResponse{
		Date:     d.Date.String(),
		Duration: d.DurationHours,
		Slots:    slots,
	}
}

func fromTimeSlot(s booking.TimeSlot) SlotResponse {
	return SlotResponse{
		Start:     s.Start().String(),
		End:       s.End().String(),
		Available: s.Available(),
	}
}
