// Package slot turns free time into bookable slots.
package slot

import (
	"iter"
	"time"

	"slotbook/internal/domain/timerange"
)

// Slot is an ephemeral bookable candidate. It is never stored.
type Slot struct {
	Start time.Time
	End   time.Time
}

func (s Slot) Range() timerange.Range {
	return timerange.Range{Start: s.Start, End: s.End}
}

func (s Slot) Equal(o Slot) bool {
	return s.Start.Equal(o.Start) && s.End.Equal(o.End)
}

// Tile lays slots of length every step across each free range, starting at the
// range start. A slot is emitted only if it fits entirely inside its range and
// does not start before notBefore.
func Tile(free []timerange.Range, length, step time.Duration, notBefore time.Time) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		if length <= 0 {
			return
		}
		if step <= 0 {
			step = length
		}
		for _, r := range free {
			for start := r.Start; !start.Add(length).After(r.End); start = start.Add(step) {
				if start.Before(notBefore) {
					continue
				}
				if !yield(Slot{Start: start, End: start.Add(length)}) {
					return
				}
			}
		}
	}
}

// Blocked widens occupied ranges so that a candidate slot with the given
// buffers conflicts with an existing occupied range exactly when it overlaps
// the widened one. The candidate's after-buffer reaches back from the existing
// start and its before-buffer reaches forward from the existing end.
func Blocked(occupied []timerange.Range, candidateBefore, candidateAfter time.Duration) []timerange.Range {
	out := make([]timerange.Range, 0, len(occupied))
	for _, o := range occupied {
		out = append(out, o.Expand(candidateAfter, candidateBefore))
	}
	return timerange.Normalize(out)
}
