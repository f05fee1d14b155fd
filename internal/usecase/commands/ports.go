package commands

import (
	"context"
	"time"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Status       string               `json:"status"`
	RequestHash  string               `json:"request_hash"`
	Confirmation *BookingConfirmation `json:"confirmation,omitempty"`
}

// IdempotencyStore deduplicates retried booking submissions.
// TryReserve returns nil when the key was free and is now held by the
// caller; otherwise it returns the record already stored under the key.
type IdempotencyStore interface {
	TryReserve(ctx context.Context, key, requestHash string) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key, requestHash string, confirmation *BookingConfirmation) error
	Release(ctx context.Context, key string) error
}

// BookingConfirmedEvent is published after a booking is written to the
// calendar.
type BookingConfirmedEvent struct {
	BookingID    string    `json:"booking_id"`
	EventType    string    `json:"event_type"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	VenueName    string    `json:"venue_name"`
	VenueAddress string    `json:"venue_address"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	ConfirmedAt  time.Time `json:"confirmed_at"`
}

type Notifier interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error
}
