// Package memory is an in-process calendar used for local runs and tests.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"band-booking/internal/domain/booking"
)

type Gateway struct {
	mu     sync.Mutex
	events []booking.Event
	nextID int
}

func NewGateway() *Gateway {
	return &Gateway{}
}

// Seed adds events as if they had been created earlier.
func (g *Gateway) Seed(events ...booking.Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, ev := range events {
		if ev.ID == "" {
			ev.ID = g.newID()
		}
		g.events = append(g.events, ev)
	}
}

func (g *Gateway) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]booking.CalendarEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	entries := make([]booking.CalendarEntry, 0)
	for _, ev := range g.events {
		if ev.End.After(timeMin) && ev.Start.Before(timeMax) {
			entries = append(entries, booking.CalendarEntry{ID: ev.ID, Start: ev.Start, End: ev.End})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})
	return entries, nil
}

func (g *Gateway) CreateEvent(ctx context.Context, draft booking.EventDraft) (*booking.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	ev := booking.Event{
		ID:          g.newID(),
		Summary:     draft.Summary,
		Description: draft.Description,
		Location:    draft.Location,
		Start:       draft.Start,
		End:         draft.End,
		TimeZone:    draft.TimeZone,
	}
	g.events = append(g.events, ev)
	return &ev, nil
}

// Events returns a copy of everything stored.
func (g *Gateway) Events() []booking.Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]booking.Event(nil), g.events...)
}

func (g *Gateway) newID() string {
	g.nextID++
	return "mem-" + strconv.Itoa(g.nextID)
}
