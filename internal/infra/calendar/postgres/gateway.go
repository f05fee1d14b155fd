// Package postgres stores the calendar in a single table whose exclusion
// constraint enforces the booking buffer on write.
package postgres

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"time"

	"band-booking/internal/domain/booking"
	"band-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exclusionViolation = "23P01"

//go:embed schema.sql
var schemaSQL string

const listEventsSQL = `
SELECT id, starts_at, ends_at
FROM calendar_events
WHERE ends_at > $1 AND starts_at < $2
ORDER BY starts_at`

const insertEventSQL = `
INSERT INTO calendar_events (id, summary, description, location, starts_at, ends_at, time_zone, color_id, guard)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, tstzrange($9, $10, '[)'))`

type Gateway struct {
	pool    *pgxpool.Pool
	buffer  time.Duration
	timeout time.Duration
	logger  *slog.Logger
}

func NewGateway(pool *pgxpool.Pool, buffer, timeout time.Duration, logger *slog.Logger) *Gateway {
	return &Gateway{pool: pool, buffer: buffer, timeout: timeout, logger: logger}
}

// Migrate creates the calendar table if it does not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}

func (g *Gateway) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]booking.CalendarEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	rows, err := g.pool.Query(ctx, listEventsSQL, timeMin, timeMax)
	if err != nil {
		return nil, infra.WrapGatewayErr(g.logger, infra.KindUnavailable, "failed to list calendar events", err)
	}
	defer rows.Close()

	entries := make([]booking.CalendarEntry, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			start, end time.Time
		)
		if err := rows.Scan(&id, &start, &end); err != nil {
			return nil, infra.WrapGatewayErr(g.logger, infra.KindDBFailure, "failed to scan calendar event", err)
		}
		entries = append(entries, booking.CalendarEntry{ID: id.String(), Start: start, End: end})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapGatewayErr(g.logger, infra.KindUnavailable, "failed to read calendar events", err)
	}
	return entries, nil
}

func (g *Gateway) CreateEvent(ctx context.Context, draft booking.EventDraft) (*booking.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	id := uuid.New()
	half := g.buffer / 2
	_, err := g.pool.Exec(ctx, insertEventSQL,
		id,
		draft.Summary,
		draft.Description,
		draft.Location,
		draft.Start,
		draft.End,
		draft.TimeZone,
		draft.ColorID,
		draft.Start.Add(-half),
		draft.End.Add(half),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == exclusionViolation {
			return nil, infra.WrapGatewayErr(g.logger, infra.KindConflict, "calendar event overlaps an existing booking", err)
		}
		return nil, infra.WrapGatewayErr(g.logger, infra.KindUnavailable, "failed to insert calendar event", err)
	}

	return &booking.Event{
		ID:          id.String(),
		Summary:     draft.Summary,
		Description: draft.Description,
		Location:    draft.Location,
		Start:       draft.Start,
		End:         draft.End,
		TimeZone:    draft.TimeZone,
	}, nil
}
