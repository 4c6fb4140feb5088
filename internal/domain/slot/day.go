package slot

import (
	"iter"
	"time"

	"slotbook/internal/domain/timerange"
)

// Day holds everything needed to compute the slots of one host-local date.
type Day struct {
	// Available is the effective availability of the date, UTC.
	Available []timerange.Range
	// Occupied holds buffered ranges of active bookings and external busy blocks.
	Occupied     []timerange.Range
	Duration     time.Duration
	Step         time.Duration
	BufferBefore time.Duration
	BufferAfter  time.Duration
	// NotBefore is now plus the minimum notice.
	NotBefore time.Time
}

func (d Day) Free() []timerange.Range {
	return timerange.SubtractAll(d.Available, Blocked(d.Occupied, d.BufferBefore, d.BufferAfter))
}

func (d Day) Slots() iter.Seq[Slot] {
	return Tile(d.Free(), d.Duration, d.Step, d.NotBefore)
}

type Verdict int

const (
	// Bookable: the slot is one the generator would offer.
	Bookable Verdict = iota
	// Outside: the slot is not within availability, has the wrong length or breaks minimum notice.
	Outside
	// Busy: the slot is within availability but overlaps blocked time.
	Busy
	// OffGrid: the slot is free but not aligned to the slot grid.
	OffGrid
)

func (v Verdict) String() string {
	switch v {
	case Bookable:
		return "bookable"
	case Outside:
		return "outside"
	case Busy:
		return "busy"
	case OffGrid:
		return "off_grid"
	default:
		return "unknown"
	}
}

// Classify decides whether s may be reserved on this day.
func (d Day) Classify(s Slot) Verdict {
	for c := range d.Slots() {
		if c.Equal(s) {
			return Bookable
		}
		if c.Start.After(s.Start) {
			break
		}
	}

	r := s.Range()
	if r.End.Sub(r.Start) != d.Duration || r.Start.Before(d.NotBefore) {
		return Outside
	}
	within := false
	for _, a := range timerange.Normalize(d.Available) {
		if a.Contains(r) {
			within = true
			break
		}
	}
	if !within {
		return Outside
	}
	if r.AnyOverlap(Blocked(d.Occupied, d.BufferBefore, d.BufferAfter)) {
		return Busy
	}
	return OffGrid
}
