//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts an event directly, guarded the same way the gateway guards writes
func SeedCalendarEvent(t *testing.T, db DBLike, summary string, start, end time.Time, buffer time.Duration) uuid.UUID {
	t.Helper()

	id := uuid.New()
	half := buffer / 2
	_, err := db.Exec(context.Background(), `
		INSERT INTO calendar_events (id, summary, starts_at, ends_at, time_zone, guard)
		VALUES ($1, $2, $3, $4, 'UTC', tstzrange($5, $6, '[)'))`,
		id, summary, start, end, start.Add(-half), end.Add(half))
	require.NoError(t, err)
	return id
}

func CountCalendarEvents(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM calendar_events").Scan(&n)
	require.NoError(t, err)
	return n
}

// empties the calendar between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE calendar_events")
	return err
}
