package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	SlotsPerDay = 24
	SlotLength  = time.Hour
)

// ClockTime is a wall-clock time of day in minutes since midnight.
// 24:00 is representable so the last slot of a day can end there.
type ClockTime struct {
	minutes int
}

var clockTimePattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("clock time %02d:%02d out of range", hour, minute)
	}
	if hour == 24 && minute != 0 {
		return ClockTime{}, fmt.Errorf("clock time %02d:%02d out of range", hour, minute)
	}
	return ClockTime{minutes: hour*60 + minute}, nil
}

// ParseClockTime accepts "HH:MM" between 00:00 and 23:59.
func ParseClockTime(s string) (ClockTime, error) {
	m := clockTimePattern.FindStringSubmatch(s)
	if m == nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}
	return NewClockTime(hour, minute)
}

func (c ClockTime) Hour() int {
	return c.minutes / 60
}

func (c ClockTime) Minute() int {
	return c.minutes % 60
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// SlotTemplate is a one-hour window of a day, independent of any date.
type SlotTemplate struct {
	start ClockTime
	end   ClockTime
}

func (s SlotTemplate) Start() ClockTime {
	return s.start
}

func (s SlotTemplate) End() ClockTime {
	return s.end
}

// GenerateTimeSlots returns the 24 hourly templates "00:00"-"01:00" through
// "23:00"-"24:00" in ascending order.
func GenerateTimeSlots() []SlotTemplate {
	slots := make([]SlotTemplate, 0, SlotsPerDay)
	for hour := 0; hour < SlotsPerDay; hour++ {
		slots = append(slots, SlotTemplate{
			start: ClockTime{minutes: hour * 60},
			end:   ClockTime{minutes: (hour + 1) * 60},
		})
	}
	return slots
}

// TimeSlot is a template resolved against a date and a calendar snapshot.
type TimeSlot struct {
	SlotTemplate
	available bool
}

func (s TimeSlot) Available() bool {
	return s.available
}

// CalendarDate is a day in the booking timezone, without a time component.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

var calendarDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseCalendarDate accepts strict "YYYY-MM-DD" naming a real date.
func ParseCalendarDate(s string) (CalendarDate, error) {
	if !calendarDatePattern.MatchString(s) {
		return CalendarDate{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{year: y, month: m, day: d}
}

// At returns the instant of the given wall-clock time on this date in loc.
func (d CalendarDate) At(c ClockTime, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, c.Hour(), c.Minute(), 0, 0, loc)
}

func (d CalendarDate) StartOfDay(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d CalendarDate) AddMonths(months int) CalendarDate {
	t := time.Date(d.year, d.month+time.Month(months), d.day, 0, 0, 0, 0, time.UTC)
	return DateOf(t)
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.compare(other) < 0
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.compare(other) > 0
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

func (d CalendarDate) compare(other CalendarDate) int {
	switch {
	case d.year != other.year:
		return d.year - other.year
	case d.month != other.month:
		return int(d.month - other.month)
	default:
		return d.day - other.day
	}
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}
