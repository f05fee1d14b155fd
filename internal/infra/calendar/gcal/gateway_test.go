//go:build unit

package gcal_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"band-booking/internal/domain/booking"
	"band-booking/internal/infra"
	"band-booking/internal/infra/calendar/gcal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

func newGateway(t *testing.T, handler http.HandlerFunc) (*gcal.Gateway, *time.Location) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := calendar.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gcal.NewGateway(svc, "band@example.com", loc, 5*time.Second, logger), loc
}

func TestListEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("expands the window query and follows pages", func(t *testing.T) {
		gw, loc := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/calendars/band@example.com/events", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "true", q.Get("singleEvents"))
			assert.Equal(t, "startTime", q.Get("orderBy"))
			assert.Equal(t, "2025-06-14T23:00:00-07:00", q.Get("timeMin"))

			if q.Get("pageToken") == "" {
				_, _ = io.WriteString(w, `{"items":[
					{"id":"a","start":{"dateTime":"2025-06-15T14:00:00-07:00"},"end":{"dateTime":"2025-06-15T18:00:00-07:00"}}
				],"nextPageToken":"p2"}`)
				return
			}
			_, _ = io.WriteString(w, `{"items":[
				{"id":"b","start":{"date":"2025-06-16"},"end":{"date":"2025-06-17"}}
			]}`)
		})

		got, err := gw.ListEvents(ctx,
			time.Date(2025, 6, 14, 23, 0, 0, 0, loc),
			time.Date(2025, 6, 16, 4, 0, 0, 0, loc))
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "a", got[0].ID)
		assert.True(t, got[0].Start.Equal(time.Date(2025, 6, 15, 14, 0, 0, 0, loc)))
		assert.Equal(t, "b", got[1].ID)
		assert.True(t, got[1].Start.Equal(time.Date(2025, 6, 16, 0, 0, 0, 0, loc)), "all-day events start at local midnight")
		assert.True(t, got[1].End.Equal(time.Date(2025, 6, 17, 0, 0, 0, 0, loc)))
	})

	t.Run("event without times is malformed", func(t *testing.T) {
		gw, loc := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"items":[{"id":"x","start":{},"end":{}}]}`)
		})

		_, err := gw.ListEvents(ctx, time.Date(2025, 6, 15, 0, 0, 0, 0, loc), time.Date(2025, 6, 16, 0, 0, 0, 0, loc))
		assert.True(t, infra.IsKind(err, infra.KindMalformedResponse), "got %v", err)
	})

	t.Run("api failure is unavailable", func(t *testing.T) {
		gw, loc := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"error":{"code":500,"message":"backend"}}`)
		})

		_, err := gw.ListEvents(ctx, time.Date(2025, 6, 15, 0, 0, 0, 0, loc), time.Date(2025, 6, 16, 0, 0, 0, 0, loc))
		assert.True(t, infra.IsKind(err, infra.KindUnavailable), "got %v", err)
	})
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("writes reminders and color, reads the echo", func(t *testing.T) {
		gw, loc := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)

			var ev calendar.Event
			if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&ev)) {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			assert.Equal(t, "wedding - Jane", ev.Summary)
			assert.Equal(t, "9", ev.ColorId)
			assert.Equal(t, "CONTACT INFORMATION", ev.Description)
			assert.Equal(t, "America/Los_Angeles", ev.Start.TimeZone)
			assert.Equal(t, "2025-06-15T14:00:00-07:00", ev.Start.DateTime)
			if assert.NotNil(t, ev.Reminders) {
				assert.False(t, ev.Reminders.UseDefault)
				assert.Len(t, ev.Reminders.Overrides, 3)
			}

			ev.Id = "gcal-1"
			_ = json.NewEncoder(w).Encode(ev)
		})

		start := time.Date(2025, 6, 15, 14, 0, 0, 0, loc)
		got, err := gw.CreateEvent(ctx, booking.EventDraft{
			Summary:     "wedding - Jane",
			Description: "CONTACT INFORMATION",
			Location:    "123 Main Street",
			Start:       start,
			End:         start.Add(4 * time.Hour),
			TimeZone:    "America/Los_Angeles",
			ColorID:     booking.EventColorID,
			Reminders:   booking.DefaultReminders,
		})
		require.NoError(t, err)
		assert.Equal(t, "gcal-1", got.ID)
		assert.Equal(t, "CONTACT INFORMATION", got.Description)
		assert.True(t, got.Start.Equal(start))
		assert.True(t, got.End.Equal(start.Add(4*time.Hour)))
	})

	t.Run("insert failure is unavailable", func(t *testing.T) {
		gw, loc := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `{"error":{"code":403,"message":"forbidden"}}`)
		})

		start := time.Date(2025, 6, 15, 14, 0, 0, 0, loc)
		_, err := gw.CreateEvent(ctx, booking.EventDraft{Start: start, End: start.Add(time.Hour)})
		assert.True(t, infra.IsKind(err, infra.KindUnavailable), "got %v", err)
	})
}
