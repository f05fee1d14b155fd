// Package gcal adapts a Google Calendar to the calendar gateway.
package gcal

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"band-booking/internal/domain/booking"
	"band-booking/internal/infra"
	"band-booking/internal/pkg/config"
	"band-booking/internal/pkg/errs"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewService authenticates as the configured service account. Private keys
// pasted into env files usually carry literal "\n" sequences.
func NewService(ctx context.Context, cfg config.CalendarConfig) (*calendar.Service, error) {
	jwtCfg := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")),
		Scopes:     []string{calendar.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(context.Background())))
	if err != nil {
		return nil, errs.Wrap(err, "create calendar service")
	}
	return svc, nil
}

type Gateway struct {
	svc        *calendar.Service
	calendarID string
	loc        *time.Location
	timeout    time.Duration
	logger     *slog.Logger
}

func NewGateway(svc *calendar.Service, calendarID string, loc *time.Location, timeout time.Duration, logger *slog.Logger) *Gateway {
	return &Gateway{
		svc:        svc,
		calendarID: calendarID,
		loc:        loc,
		timeout:    timeout,
		logger:     logger,
	}
}

// ListEvents expands recurring events and follows every page.
func (g *Gateway) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]booking.CalendarEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	call := g.svc.Events.List(g.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	entries := make([]booking.CalendarEntry, 0)
	var malformed error
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			entry, err := g.toEntry(item)
			if err != nil {
				malformed = err
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if malformed != nil {
		return nil, infra.WrapGatewayErr(g.logger, infra.KindMalformedResponse, "unparsable calendar event", malformed)
	}
	if err != nil {
		return nil, infra.WrapGatewayErr(g.logger, infra.KindUnavailable, "failed to list calendar events", err)
	}
	return entries, nil
}

func (g *Gateway) CreateEvent(ctx context.Context, draft booking.EventDraft) (*booking.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	overrides := make([]*calendar.EventReminder, 0, len(draft.Reminders))
	for _, r := range draft.Reminders {
		overrides = append(overrides, &calendar.EventReminder{Method: r.Method, Minutes: int64(r.Minutes)})
	}

	body := &calendar.Event{
		Summary:     draft.Summary,
		Description: draft.Description,
		Location:    draft.Location,
		Start:       &calendar.EventDateTime{DateTime: draft.Start.Format(time.RFC3339), TimeZone: draft.TimeZone},
		End:         &calendar.EventDateTime{DateTime: draft.End.Format(time.RFC3339), TimeZone: draft.TimeZone},
		ColorId:     draft.ColorID,
		Reminders: &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       overrides,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := g.svc.Events.Insert(g.calendarID, body).Context(ctx).Do()
	if err != nil {
		return nil, infra.WrapGatewayErr(g.logger, infra.KindUnavailable, "failed to insert calendar event", err)
	}

	// Echoed times that fail to parse are left zero and filled from the draft.
	ev := &booking.Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		Location:    created.Location,
	}
	if created.Start != nil {
		ev.Start, _ = time.Parse(time.RFC3339, created.Start.DateTime)
		ev.TimeZone = created.Start.TimeZone
	}
	if created.End != nil {
		ev.End, _ = time.Parse(time.RFC3339, created.End.DateTime)
	}
	return ev, nil
}

func (g *Gateway) toEntry(item *calendar.Event) (booking.CalendarEntry, error) {
	if item.Start == nil || item.End == nil {
		return booking.CalendarEntry{}, errs.New("event " + item.Id + " has no start or end")
	}
	start, err := g.parseEventTime(item.Start)
	if err != nil {
		return booking.CalendarEntry{}, errs.Wrap(err, "event "+item.Id+" start")
	}
	end, err := g.parseEventTime(item.End)
	if err != nil {
		return booking.CalendarEntry{}, errs.Wrap(err, "event "+item.Id+" end")
	}
	return booking.CalendarEntry{ID: item.Id, Start: start, End: end}, nil
}

// parseEventTime reads a timed instant, or an all-day date as midnight in
// the booking timezone. All-day end dates are exclusive.
func (g *Gateway) parseEventTime(t *calendar.EventDateTime) (time.Time, error) {
	if t.DateTime != "" {
		return time.Parse(time.RFC3339, t.DateTime)
	}
	if t.Date != "" {
		date, err := booking.ParseCalendarDate(t.Date)
		if err != nil {
			return time.Time{}, err
		}
		return date.StartOfDay(g.loc), nil
	}
	return time.Time{}, errs.New("missing dateTime and date")
}
