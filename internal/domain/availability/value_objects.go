package availability

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidClockTime     = errors.New("clock time must be HH:MM between 00:00 and 24:00")
	ErrInvalidInterval      = errors.New("interval start must be before end")
	ErrOverlappingIntervals = errors.New("intervals must not overlap")
	ErrInvalidDate          = errors.New("date must be YYYY-MM-DD")
	ErrInvalidWeekday       = errors.New("unknown day of week")
	ErrDuplicateWeekday     = errors.New("day of week listed more than once")
)

const minutesPerDay = 24 * 60

// ClockTime is a wall-clock time in the host's zone, stored as minutes after
// midnight. 24:00 is allowed as an interval end.
type ClockTime int

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return 0, ErrInvalidClockTime
	}
	m := hour*60 + minute
	if m > minutesPerDay {
		return 0, ErrInvalidClockTime
	}
	return ClockTime(m), nil
}

func ParseClockTime(s string) (ClockTime, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(h) != 2 || len(m) != 2 {
		return 0, ErrInvalidClockTime
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, ErrInvalidClockTime
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, ErrInvalidClockTime
	}
	return NewClockTime(hour, minute)
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On resolves the clock time on date in loc. Hours past midnight roll into the
// next day so 24:00 is the following midnight; time.Date handles DST gaps.
func (c ClockTime) On(d Date, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, c.Hour(), c.Minute(), 0, 0, loc)
}

// LocalInterval is a [Start, End) range of host-local clock times within one day.
type LocalInterval struct {
	Start ClockTime
	End   ClockTime
}

func NewLocalInterval(start, end ClockTime) (LocalInterval, error) {
	if start >= end {
		return LocalInterval{}, ErrInvalidInterval
	}
	return LocalInterval{Start: start, End: end}, nil
}

func ParseLocalInterval(start, end string) (LocalInterval, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return LocalInterval{}, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return LocalInterval{}, err
	}
	return NewLocalInterval(s, e)
}

func (i LocalInterval) String() string {
	return i.Start.String() + "-" + i.End.String()
}

// sortIntervals orders intervals by start and rejects overlaps. Touching
// intervals are accepted.
func sortIntervals(ivs []LocalInterval) ([]LocalInterval, error) {
	out := slices.Clone(ivs)
	slices.SortFunc(out, func(a, b LocalInterval) int { return int(a.Start) - int(b.Start) })
	for i, iv := range out {
		if iv.Start >= iv.End || iv.End > minutesPerDay {
			return nil, ErrInvalidInterval
		}
		if i > 0 && iv.Start < out[i-1].End {
			return nil, ErrOverlappingIntervals
		}
	}
	return out, nil
}

// Date is a calendar date without zone, interpreted in the host's timezone.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// DateOf returns the calendar date of instant t as seen in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	lt := t.In(loc)
	return Date{year: lt.Year(), month: lt.Month(), day: lt.Day()}
}

func (d Date) Year() int          { return d.year }
func (d Date) Month() time.Month  { return d.month }
func (d Date) Day() int           { return d.day }
func (d Date) IsZero() bool       { return d.year == 0 && d.month == 0 && d.day == 0 }
func (d Date) AddDays(n int) Date { return NewDate(d.year, d.month, d.day+n) }

func (d Date) Weekday() time.Weekday {
	return time.Date(d.year, d.month, d.day, 12, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) Compare(o Date) int {
	a := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
	b := time.Date(o.year, o.month, o.day, 0, 0, 0, 0, time.UTC)
	return a.Compare(b)
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// StartIn returns local midnight of d in loc.
func (d Date) StartIn(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Dates lists every date from first to last inclusive.
func Dates(first, last Date) []Date {
	var out []Date
	for d := first; !d.After(last); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, ErrInvalidWeekday
	}
	return d, nil
}
