package queries

import (
	"context"
	"log/slog"
	"time"

	"band-booking/internal/domain/booking"
	"band-booking/internal/pkg/clock"
	"band-booking/internal/pkg/config"
	"band-booking/internal/pkg/errs"
	"band-booking/internal/usecase/shared"
)

const (
	MinDurationHours = 1
	MaxDurationHours = 12
)

var (
	ErrDateInPast      = errs.New("cannot book gigs in the past")
	ErrBeyondHorizon   = errs.New("date is beyond the advance booking window")
	ErrInvalidDate     = errs.New("invalid date")
	ErrInvalidDuration = errs.New("invalid duration")
)

type AvailabilityQuery struct {
	Date          string
	DurationHours int // zero selects the default duration
}

type DayAvailability struct {
	Date          booking.CalendarDate
	DurationHours int
	Slots         []booking.TimeSlot
}

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, q AvailabilityQuery) (*DayAvailability, error)
}

type availabilityQueriesImpl struct {
	gateway         shared.CalendarGateway
	policy          *booking.Policy
	clock           clock.Clock
	defaultDuration int
	advanceMonths   int
	logger          *slog.Logger
}

func NewAvailabilityQueries(
	gateway shared.CalendarGateway,
	policy *booking.Policy,
	clock clock.Clock,
	cfg config.BookingConfig,
	logger *slog.Logger,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		gateway:         gateway,
		policy:          policy,
		clock:           clock,
		defaultDuration: cfg.DefaultDurationHours,
		advanceMonths:   cfg.AdvanceMonths,
		logger:          logger,
	}
}

func (a *availabilityQueriesImpl) GetAvailability(ctx context.Context, q AvailabilityQuery) (*DayAvailability, error) {
	date, err := booking.ParseCalendarDate(q.Date)
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrInvalidDate), shared.ErrMalformedInput)
	}

	hours := q.DurationHours
	if hours == 0 {
		hours = a.defaultDuration
	}
	if hours < MinDurationHours || hours > MaxDurationHours {
		return nil, errs.Mark(ErrInvalidDuration, shared.ErrMalformedInput)
	}

	now := a.clock.Now()
	today := a.policy.Today(now)
	if date.Before(today) {
		return nil, ErrDateInPast
	}
	if date.After(today.AddMonths(a.advanceMonths)) {
		return nil, ErrBeyondHorizon
	}

	duration := time.Duration(hours) * time.Hour
	timeMin, timeMax := a.policy.DayWindow(date, duration)
	entries, err := a.gateway.ListEvents(ctx, timeMin, timeMax)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrUpstreamUnavailable)
	}

	slots := a.policy.Resolve(date, duration, entries, now)
	a.logger.Debug("availability resolved",
		slog.String("date", date.String()),
		slog.Int("duration_hours", hours),
		slog.Int("events", len(entries)),
	)

	return &DayAvailability{
		Date:          date,
		DurationHours: hours,
		Slots:         slots,
	}, nil
}
