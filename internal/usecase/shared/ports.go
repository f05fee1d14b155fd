package shared

import (
	"context"
	"time"

	"band-booking/internal/domain/booking"
	"band-booking/internal/pkg/errs"
)

var (
	ErrUpstreamUnavailable = errs.New("upstream unavailable")
	ErrMalformedInput      = errs.New("malformed input")
)

// CalendarGateway is the calendar of record. ListEvents returns every
// event whose end is after timeMin and whose start is before timeMax.
type CalendarGateway interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]booking.CalendarEntry, error)
	CreateEvent(ctx context.Context, draft booking.EventDraft) (*booking.Event, error)
}
