package booking

import (
	"errors"
	"time"
)

// CalendarEntry is an existing calendar event as far as availability is
// concerned: only its span matters.
type CalendarEntry struct {
	ID    string
	Start time.Time
	End   time.Time
}

// BusyInterval is an entry widened by the buffer on both sides.
type BusyInterval struct {
	start time.Time
	end   time.Time
}

func (b BusyInterval) Start() time.Time {
	return b.start
}

func (b BusyInterval) End() time.Time {
	return b.end
}

// Overlaps reports whether [start, end) intersects the interval. Touching
// endpoints do not overlap.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.end) && end.After(b.start)
}

// Policy holds the booking timezone and the travel/setup buffer kept
// around every event.
type Policy struct {
	loc    *time.Location
	buffer time.Duration
}

func NewPolicy(loc *time.Location, buffer time.Duration) (*Policy, error) {
	if loc == nil {
		return nil, errors.New("booking timezone is required")
	}
	if buffer < 0 {
		return nil, errors.New("buffer must not be negative")
	}
	return &Policy{loc: loc, buffer: buffer}, nil
}

func (p *Policy) Location() *time.Location {
	return p.loc
}

func (p *Policy) Buffer() time.Duration {
	return p.buffer
}

// Today is the current calendar date in the booking timezone.
func (p *Policy) Today(now time.Time) CalendarDate {
	return DateOf(now.In(p.loc))
}

// StartOf is the instant a booking at date/time begins.
func (p *Policy) StartOf(date CalendarDate, at ClockTime) time.Time {
	return date.At(at, p.loc)
}

// Exists reports whether the wall-clock time occurs on date in the booking
// timezone. Times skipped by a daylight-saving jump do not, and StartOf
// would silently move them to another hour.
func (p *Policy) Exists(date CalendarDate, at ClockTime) bool {
	t := p.StartOf(date, at)
	return DateOf(t) == date && t.Hour() == at.Hour() && t.Minute() == at.Minute()
}

// IsPast reports whether a slot starting at start can no longer be booked.
// A slot starting exactly now is already past.
func (p *Policy) IsPast(start, now time.Time) bool {
	return !start.After(now)
}

// BusyIntervals widens each entry by the buffer.
func (p *Policy) BusyIntervals(entries []CalendarEntry) []BusyInterval {
	busy := make([]BusyInterval, 0, len(entries))
	for _, e := range entries {
		busy = append(busy, BusyInterval{
			start: e.Start.Add(-p.buffer),
			end:   e.End.Add(p.buffer),
		})
	}
	return busy
}

// ConflictWindow is the range a calendar must be queried over before
// committing [start, end): any event overlapping it violates the buffer.
func (p *Policy) ConflictWindow(start, end time.Time) (time.Time, time.Time) {
	return start.Add(-p.buffer), end.Add(p.buffer)
}

// DayWindow is the single range covering every candidate slot of date for
// the given duration, including spill past midnight and the buffer on
// each side. Events ending before it or starting after it cannot affect
// any slot.
func (p *Policy) DayWindow(date CalendarDate, duration time.Duration) (time.Time, time.Time) {
	slots := GenerateTimeSlots()
	first := p.StartOf(date, slots[0].Start())
	last := p.StartOf(date, slots[len(slots)-1].Start()).Add(duration)
	return p.ConflictWindow(first, last)
}

// Resolve marks each of the day's slots available or not. A slot is
// unavailable when its start hour does not exist that day, when it is past,
// or when [slotStart, slotStart+duration)
// overlaps any buffered entry.
func (p *Policy) Resolve(date CalendarDate, duration time.Duration, entries []CalendarEntry, now time.Time) []TimeSlot {
	busy := p.BusyIntervals(entries)
	templates := GenerateTimeSlots()

	slots := make([]TimeSlot, 0, len(templates))
	for _, tpl := range templates {
		start := p.StartOf(date, tpl.Start())
		end := start.Add(duration)
		slots = append(slots, TimeSlot{
			SlotTemplate: tpl,
			available:    p.Exists(date, tpl.Start()) && !p.IsPast(start, now) && !conflicts(busy, start, end),
		})
	}
	return slots
}

func conflicts(busy []BusyInterval, start, end time.Time) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}
