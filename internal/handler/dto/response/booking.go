package response

import (
	"band-booking/internal/usecase/commands"
)

const bookingConfirmedMessage = "Gig booking confirmed!"

type AppointmentResponse struct {
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Duration  float64 `json:"duration"`
	EventType string  `json:"eventType"`
}

type BookingResponse struct {
	Success     bool                `json:"success"`
	BookingID   string              `json:"bookingId"`
	Message     string              `json:"message"`
	Appointment AppointmentResponse `json:"appointment"`
}

func FromBookingConfirmation(c *commands.BookingConfirmation) BookingResponse {
	return BookingResponse{
		Success:   true,
		BookingID: c.BookingID,
		Message:   bookingConfirmedMessage,
		Appointment: AppointmentResponse{
			Date:      c.Date,
			Time:      c.Time,
			Duration:  c.Duration,
			EventType: c.EventType,
		},
	}
}
