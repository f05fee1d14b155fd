//go:build unit

package memory_test

import (
	"context"
	"testing"
	"time"

	"band-booking/internal/domain/booking"
	"band-booking/internal/infra/calendar/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway(t *testing.T) {
	ctx := context.Background()
	at := func(h int) time.Time { return time.Date(2025, 6, 15, h, 0, 0, 0, time.UTC) }

	t.Run("lists events overlapping the open window, ordered by start", func(t *testing.T) {
		g := memory.NewGateway()
		g.Seed(
			booking.Event{ID: "late", Start: at(20), End: at(22)},
			booking.Event{ID: "early", Start: at(8), End: at(10)},
			booking.Event{ID: "touching", Start: at(12), End: at(14)},
		)

		got, err := g.ListEvents(ctx, at(9), at(20))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "early", got[0].ID)
		assert.Equal(t, "touching", got[1].ID)

		got, err = g.ListEvents(ctx, at(14), at(20))
		require.NoError(t, err)
		assert.Empty(t, got, "an event ending at timeMin or starting at timeMax is outside")
	})

	t.Run("created events are listed and get ids", func(t *testing.T) {
		g := memory.NewGateway()
		ev, err := g.CreateEvent(ctx, booking.EventDraft{Summary: "wedding - Jane", Description: "EVENT DETAILS", Start: at(14), End: at(18), TimeZone: "UTC"})
		require.NoError(t, err)
		assert.Equal(t, "mem-1", ev.ID)
		assert.Equal(t, "wedding - Jane", ev.Summary)
		assert.Equal(t, "EVENT DETAILS", ev.Description)

		got, err := g.ListEvents(ctx, at(0), at(23))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, ev.ID, got[0].ID)
		assert.Len(t, g.Events(), 1)
	})

	t.Run("honors cancellation", func(t *testing.T) {
		g := memory.NewGateway()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := g.ListEvents(cancelled, at(0), at(23))
		assert.ErrorIs(t, err, context.Canceled)
		_, err = g.CreateEvent(cancelled, booking.EventDraft{Start: at(1), End: at(2)})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, g.Events())
	})
}
