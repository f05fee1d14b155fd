package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"band-booking/internal/domain/booking"
	"band-booking/internal/infra"
	"band-booking/internal/pkg/clock"
	"band-booking/internal/pkg/errs"
	"band-booking/internal/usecase/shared"
)

const notifyTimeout = 5 * time.Second

var (
	ErrValidationFailed      = errs.New("booking validation failed")
	ErrSlotConflict          = errs.New("time slot is no longer available")
	ErrIdempotencyInProgress = errs.New("idempotency in progress")
	ErrIdempotencyMismatch   = errs.New("idempotency key reused with a different request")
)

// ValidationError carries the per-field messages of a rejected request.
type ValidationError struct {
	Result booking.ValidationResult
}

func (e *ValidationError) Error() string {
	return "booking validation failed: " + strings.Join(e.Result.Errors.Fields(), ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Stage names the point a booking attempt reached. Only StageCommitted
// leaves a calendar event behind.
type Stage string

const (
	StageReceived              Stage = "received"
	StageValidated             Stage = "validated"
	StageAvailabilityConfirmed Stage = "availability_confirmed"
	StageCommitted             Stage = "committed"
	StageRejected              Stage = "rejected"
)

type BookingConfirmation struct {
	BookingID string        `json:"booking_id"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Duration  float64       `json:"duration"`
	EventType string        `json:"event_type"`
	Event     booking.Event `json:"event"`
}

type CreateBookingResult struct {
	Confirmation *BookingConfirmation
	IsReplayed   bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req booking.Request, idempotencyKey string) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	gateway     shared.CalendarGateway
	validator   *booking.Validator
	policy      *booking.Policy
	idempotency IdempotencyStore
	notifier    Notifier
	clock       clock.Clock
	logger      *slog.Logger
}

func NewBookingCommands(
	gateway shared.CalendarGateway,
	validator *booking.Validator,
	policy *booking.Policy,
	idempotency IdempotencyStore,
	notifier Notifier,
	clock clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		gateway:     gateway,
		validator:   validator,
		policy:      policy,
		idempotency: idempotency,
		notifier:    notifier,
		clock:       clock,
		logger:      logger,
	}
}

func (b *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req booking.Request,
	idempotencyKey string,
) (*CreateBookingResult, error) {
	req = req.Trimmed()
	b.logStage(StageReceived, req)

	if result := b.validator.Validate(req); !result.IsValid() {
		b.logger.Info("booking rejected",
			slog.String("stage", string(StageRejected)),
			slog.String("reason", "validation"),
			slog.Any("fields", result.Errors.Fields()),
		)
		return nil, &ValidationError{Result: result}
	}
	b.logStage(StageValidated, req)

	if idempotencyKey == "" {
		confirmation, err := b.commit(ctx, req)
		if err != nil {
			return nil, err
		}
		return &CreateBookingResult{Confirmation: confirmation}, nil
	}

	requestHash := b.calculateRequestHash(req)
	existing, err := b.idempotency.TryReserve(ctx, idempotencyKey, requestHash)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrUpstreamUnavailable)
	}
	if existing != nil {
		return b.replay(existing, requestHash)
	}

	confirmation, err := b.commit(ctx, req)
	if err != nil {
		if releaseErr := b.idempotency.Release(context.WithoutCancel(ctx), idempotencyKey); releaseErr != nil {
			b.logger.Warn("failed to release idempotency key", "error", releaseErr)
		}
		return nil, err
	}

	// The calendar already holds the event; a failure here only loses replay.
	if err := b.idempotency.Complete(context.WithoutCancel(ctx), idempotencyKey, requestHash, confirmation); err != nil {
		b.logger.Warn("failed to complete idempotency key", "error", err)
	}

	return &CreateBookingResult{Confirmation: confirmation}, nil
}

func (b *bookingCommandsImpl) replay(existing *IdempotencyRecord, requestHash string) (*CreateBookingResult, error) {
	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyMismatch
	}
	switch existing.Status {
	case IdempotencyStatusCompleted:
		if existing.Confirmation == nil {
			return nil, errs.New("completed idempotency record missing confirmation")
		}
		return &CreateBookingResult{Confirmation: existing.Confirmation, IsReplayed: true}, nil
	case IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

// commit re-checks the slot against the live calendar and writes the
// event. The check and the write are not atomic; gateways that can
// enforce exclusion report a conflict on create.
func (b *bookingCommandsImpl) commit(ctx context.Context, req booking.Request) (*BookingConfirmation, error) {
	date, at, err := req.Schedule()
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse booking schedule"), shared.ErrMalformedInput)
	}

	if !b.policy.Exists(date, at) {
		b.logRejected("nonexistent_local_time", b.policy.StartOf(date, at))
		return nil, errs.Mark(errs.New("slot start does not exist in the booking timezone"), ErrSlotConflict)
	}

	start := b.policy.StartOf(date, at)
	end := start.Add(req.DurationValue())

	if b.policy.IsPast(start, b.clock.Now()) {
		b.logRejected("past", start)
		return nil, errs.Mark(errs.New("slot start is in the past"), ErrSlotConflict)
	}

	timeMin, timeMax := b.policy.ConflictWindow(start, end)
	existing, err := b.gateway.ListEvents(ctx, timeMin, timeMax)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrUpstreamUnavailable)
	}
	if len(existing) > 0 {
		b.logRejected("conflict", start)
		return nil, ErrSlotConflict
	}
	b.logStage(StageAvailabilityConfirmed, req)

	draft := booking.NewEventDraft(req, start, end, b.policy.Location())
	created, err := b.gateway.CreateEvent(ctx, draft)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			b.logRejected("conflict_on_create", start)
			return nil, errs.Mark(err, ErrSlotConflict)
		}
		return nil, errs.Mark(err, shared.ErrUpstreamUnavailable)
	}
	if created == nil {
		created = &booking.Event{}
	}
	event := draft.Confirm(*created, b.clock.Now())

	confirmation := &BookingConfirmation{
		BookingID: event.ID,
		Date:      req.Date,
		Time:      req.Time,
		Duration:  req.Duration,
		EventType: req.EventType,
		Event:     event,
	}
	b.logger.Info("booking committed",
		slog.String("stage", string(StageCommitted)),
		slog.String("booking_id", event.ID),
		slog.Time("start", start),
	)

	b.publishConfirmed(ctx, req, event)
	return confirmation, nil
}

func (b *bookingCommandsImpl) publishConfirmed(ctx context.Context, req booking.Request, event booking.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	err := b.notifier.PublishBookingConfirmed(ctx, BookingConfirmedEvent{
		BookingID:    event.ID,
		EventType:    req.EventType,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		VenueName:    req.VenueName,
		VenueAddress: req.VenueAddress,
		StartsAt:     event.Start,
		EndsAt:       event.End,
		ConfirmedAt:  b.clock.Now(),
	})
	if err != nil {
		b.logger.Warn("failed to publish booking confirmation",
			slog.String("booking_id", event.ID),
			slog.String("error", err.Error()),
		)
	}
}

func (b *bookingCommandsImpl) logStage(stage Stage, req booking.Request) {
	b.logger.Debug("booking attempt",
		slog.String("stage", string(stage)),
		slog.String("date", req.Date),
		slog.String("time", req.Time),
	)
}

func (b *bookingCommandsImpl) logRejected(reason string, start time.Time) {
	b.logger.Info("booking rejected",
		slog.String("stage", string(StageRejected)),
		slog.String("reason", reason),
		slog.Time("start", start),
	)
}

func (b *bookingCommandsImpl) calculateRequestHash(req booking.Request) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
