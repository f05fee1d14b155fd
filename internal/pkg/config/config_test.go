//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"band-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "America/Los_Angeles", cfg.Booking.TimeZone)
		assert.Equal(t, 60*time.Minute, cfg.Booking.Buffer)
		assert.Equal(t, 4, cfg.Booking.DefaultDurationHours)
		assert.Equal(t, 12, cfg.Booking.AdvanceMonths)
		assert.Equal(t, config.CalendarBackendMemory, cfg.Calendar.Backend)
		assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
		if _, set := os.LookupEnv("PORT"); !set {
			assert.Equal(t, "8080", cfg.Server.Port)
		}
		assert.Equal(t, config.NotifyBackendLog, cfg.Notify.Backend)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("BOOKING_BUFFER", "30m")
		t.Setenv("CALENDAR_BACKEND", "postgres")
		t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 30*time.Minute, cfg.Booking.Buffer)
		assert.Equal(t, config.CalendarBackendPostgres, cfg.Calendar.Backend)
		assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Notify.KafkaBrokers)
	})

	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "google without credentials", env: map[string]string{"CALENDAR_BACKEND": "google", "GOOGLE_CALENDAR_ID": ""}},
		{name: "unknown calendar backend", env: map[string]string{"CALENDAR_BACKEND": "outlook"}},
		{name: "unknown notify backend", env: map[string]string{"NOTIFY_BACKEND": "sms"}},
		{name: "negative buffer", env: map[string]string{"BOOKING_BUFFER": "-1m"}},
		{name: "default duration out of range", env: map[string]string{"BOOKING_DEFAULT_DURATION_HOURS": "13"}},
		{name: "malformed duration", env: map[string]string{"BOOKING_BUFFER": "an hour"}},
		{name: "zero idempotency ttl", env: map[string]string{"IDEMPOTENCY_TTL": "0s"}},
		{name: "negative idempotency ttl", env: map[string]string{"IDEMPOTENCY_TTL": "-1h"}},
		{name: "rate limit without capacity", env: map[string]string{"RATE_LIMIT_ENABLED": "true", "RATE_LIMIT_CAPACITY": "0"}},
		{name: "rate limit without refill", env: map[string]string{"RATE_LIMIT_ENABLED": "true", "RATE_LIMIT_REFILL": "0s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigDisabledRateLimitSkipsBucketChecks(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_CAPACITY", "0")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestNewTestConfig(t *testing.T) {
	cfg := config.NewTestConfig()

	assert.Positive(t, cfg.Redis.IdempotencyTTL)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.GreaterOrEqual(t, cfg.RateLimit.Capacity, 1)
	assert.Positive(t, cfg.RateLimit.Refill)
	assert.NotEmpty(t, cfg.CORS.AllowOrigins)
}

func TestBookingConfigLocation(t *testing.T) {
	cfg := config.BookingConfig{TimeZone: "America/Los_Angeles"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", loc.String())

	cfg.TimeZone = "Mars/Olympus"
	_, err = cfg.Location()
	assert.Error(t, err)
}

func TestDBConfigBuildDSN(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db", Port: "5432", User: "u", Password: "p",
		DBName: "band_booking", SSLMode: "disable", TimeZone: "UTC",
	}
	assert.Equal(t, "postgres://u:p@db:5432/band_booking?sslmode=disable&timezone=UTC", cfg.BuildDSN())
}
