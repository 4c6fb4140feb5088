package availability

import (
	"errors"
	"slices"
	"time"

	"slotbook/internal/domain/timerange"

	"github.com/google/uuid"
)

var (
	ErrInvalidOverrideStatus    = errors.New("invalid override status")
	ErrAvailableNeedsIntervals  = errors.New("available override requires at least one interval")
	ErrUnavailableHasIntervals  = errors.New("unavailable override must not carry intervals")
	ErrInvalidOverrideDateRange = errors.New("override end date must not be before start date")
)

// WeeklyRule is the recurring availability for one weekday. No intervals means
// the host is unavailable on that day.
type WeeklyRule struct {
	day       time.Weekday
	intervals []LocalInterval
}

func NewWeeklyRule(day time.Weekday, intervals []LocalInterval) (WeeklyRule, error) {
	if day < time.Sunday || day > time.Saturday {
		return WeeklyRule{}, ErrInvalidWeekday
	}
	sorted, err := sortIntervals(intervals)
	if err != nil {
		return WeeklyRule{}, err
	}
	return WeeklyRule{day: day, intervals: sorted}, nil
}

func (r WeeklyRule) Day() time.Weekday          { return r.day }
func (r WeeklyRule) Intervals() []LocalInterval { return slices.Clone(r.intervals) }
func (r WeeklyRule) IsUnavailable() bool        { return len(r.intervals) == 0 }

// NewWeek builds a full week from the supplied rules. Days not supplied are
// unavailable.
func NewWeek(rules []WeeklyRule) ([]WeeklyRule, error) {
	var seen [7]bool
	week := make([]WeeklyRule, 7)
	for d := range week {
		week[d] = WeeklyRule{day: time.Weekday(d)}
	}
	for _, r := range rules {
		if seen[r.day] {
			return nil, ErrDuplicateWeekday
		}
		seen[r.day] = true
		week[r.day] = r
	}
	return week, nil
}

type OverrideStatus string

const (
	OverrideAvailable   OverrideStatus = "available"
	OverrideUnavailable OverrideStatus = "unavailable"
	OverrideOutOfOffice OverrideStatus = "out_of_office"
)

func (s OverrideStatus) IsValid() bool {
	switch s {
	case OverrideAvailable, OverrideUnavailable, OverrideOutOfOffice:
		return true
	default:
		return false
	}
}

// DateOverride replaces the weekly rule for a single date.
type DateOverride struct {
	date      Date
	status    OverrideStatus
	intervals []LocalInterval
}

func NewDateOverride(date Date, status OverrideStatus, intervals []LocalInterval) (DateOverride, error) {
	if date.IsZero() {
		return DateOverride{}, ErrInvalidDate
	}
	if !status.IsValid() {
		return DateOverride{}, ErrInvalidOverrideStatus
	}
	if status == OverrideAvailable && len(intervals) == 0 {
		return DateOverride{}, ErrAvailableNeedsIntervals
	}
	if status != OverrideAvailable && len(intervals) > 0 {
		return DateOverride{}, ErrUnavailableHasIntervals
	}
	sorted, err := sortIntervals(intervals)
	if err != nil {
		return DateOverride{}, err
	}
	return DateOverride{date: date, status: status, intervals: sorted}, nil
}

// NewDateRangeOverrides applies the same override to every date in [first, last].
func NewDateRangeOverrides(first, last Date, status OverrideStatus, intervals []LocalInterval) ([]DateOverride, error) {
	if last.Before(first) {
		return nil, ErrInvalidOverrideDateRange
	}
	var out []DateOverride
	for _, d := range Dates(first, last) {
		o, err := NewDateOverride(d, status, intervals)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (o DateOverride) Date() Date                 { return o.date }
func (o DateOverride) Status() OverrideStatus     { return o.status }
func (o DateOverride) Intervals() []LocalInterval { return slices.Clone(o.intervals) }

// Schedule is a host's complete availability: timezone, week and overrides.
type Schedule struct {
	hostID    uuid.UUID
	location  *time.Location
	weekly    map[time.Weekday]WeeklyRule
	overrides map[Date]DateOverride
}

func NewSchedule(hostID uuid.UUID, loc *time.Location, weekly []WeeklyRule, overrides []DateOverride) *Schedule {
	if loc == nil {
		loc = time.UTC
	}
	s := &Schedule{
		hostID:    hostID,
		location:  loc,
		weekly:    make(map[time.Weekday]WeeklyRule, len(weekly)),
		overrides: make(map[Date]DateOverride, len(overrides)),
	}
	for _, r := range weekly {
		s.weekly[r.day] = r
	}
	for _, o := range overrides {
		s.overrides[o.date] = o
	}
	return s
}

func (s *Schedule) HostID() uuid.UUID        { return s.hostID }
func (s *Schedule) Location() *time.Location { return s.location }

// IsConfigured reports whether the host has stored any weekly rule or override.
func (s *Schedule) IsConfigured() bool {
	return len(s.weekly) > 0 || len(s.overrides) > 0
}

// Override returns the override for date, if any.
func (s *Schedule) Override(date Date) (DateOverride, bool) {
	o, ok := s.overrides[date]
	return o, ok
}

// LocalIntervals resolves the host-local intervals for date. An override fully
// replaces the weekly rule.
func (s *Schedule) LocalIntervals(date Date) []LocalInterval {
	if o, ok := s.overrides[date]; ok {
		if o.status != OverrideAvailable {
			return nil
		}
		return o.intervals
	}
	return s.weekly[date.Weekday()].intervals
}

// EffectiveIntervals returns the UTC ranges the host is available on date,
// ordered and merged.
func (s *Schedule) EffectiveIntervals(date Date) []timerange.Range {
	local := s.LocalIntervals(date)
	out := make([]timerange.Range, 0, len(local))
	for _, iv := range local {
		start := iv.Start.On(date, s.location).UTC()
		end := iv.End.On(date, s.location).UTC()
		if !start.Before(end) {
			// clock times swallowed by a DST transition
			continue
		}
		out = append(out, timerange.Range{Start: start, End: end})
	}
	return timerange.Normalize(out)
}
