// Package notify publishes booking confirmations to downstream consumers.
package notify

import (
	"context"
	"log/slog"

	"band-booking/internal/usecase/commands"
)

// LogNotifier writes confirmations to the application log only.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) PublishBookingConfirmed(_ context.Context, event commands.BookingConfirmedEvent) error {
	n.logger.Info("booking confirmed",
		slog.String("booking_id", event.BookingID),
		slog.String("event_type", event.EventType),
		slog.String("venue", event.VenueName),
		slog.Time("starts_at", event.StartsAt),
	)
	return nil
}
