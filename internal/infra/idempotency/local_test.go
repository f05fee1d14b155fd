//go:build unit

package idempotency_test

import (
	"context"
	"testing"
	"time"

	"band-booking/internal/infra/idempotency"
	"band-booking/internal/pkg/clock"
	"band-booking/internal/pkg/config"
	"band-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	t.Run("first reservation wins", func(t *testing.T) {
		s := idempotency.NewLocalStore(time.Hour, clk)

		rec, err := s.TryReserve(ctx, "k", "hash-a")
		require.NoError(t, err)
		assert.Nil(t, rec)

		rec, err = s.TryReserve(ctx, "k", "hash-a")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, commands.IdempotencyStatusProcessing, rec.Status)
		assert.Equal(t, "hash-a", rec.RequestHash)
	})

	t.Run("test config keeps completed records replayable", func(t *testing.T) {
		s := idempotency.NewLocalStore(config.NewTestConfig().Redis.IdempotencyTTL, clk)
		conf := &commands.BookingConfirmation{BookingID: "evt-cfg"}

		_, _ = s.TryReserve(ctx, "cfg", "hash-a")
		require.NoError(t, s.Complete(ctx, "cfg", "hash-a", conf))

		rec, err := s.TryReserve(ctx, "cfg", "hash-a")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, commands.IdempotencyStatusCompleted, rec.Status)
		assert.Equal(t, conf, rec.Confirmation)
	})

	t.Run("completed record is replayed until it expires", func(t *testing.T) {
		s := idempotency.NewLocalStore(time.Hour, clk)
		conf := &commands.BookingConfirmation{BookingID: "evt-1"}

		_, _ = s.TryReserve(ctx, "k", "hash-a")
		require.NoError(t, s.Complete(ctx, "k", "hash-a", conf))

		rec, err := s.TryReserve(ctx, "k", "hash-a")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, commands.IdempotencyStatusCompleted, rec.Status)
		assert.Equal(t, conf, rec.Confirmation)

		clk.Add(time.Hour)
		rec, err = s.TryReserve(ctx, "k", "hash-b")
		require.NoError(t, err)
		assert.Nil(t, rec, "expired keys can be reserved again")
	})

	t.Run("released key is free again", func(t *testing.T) {
		s := idempotency.NewLocalStore(time.Hour, clk)
		_, _ = s.TryReserve(ctx, "k", "hash-a")
		require.NoError(t, s.Release(ctx, "k"))

		rec, err := s.TryReserve(ctx, "k", "hash-a")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})
}
