// Package timerange provides half-open [Start, End) instant ranges and the set
// arithmetic the slot generator is built from. Ranges touching at an edge do
// not overlap.
package timerange

import (
	"errors"
	"slices"
	"time"
)

var ErrInvalidRange = errors.New("range start must be before end")

type Range struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) (Range, error) {
	if !start.Before(end) {
		return Range{}, ErrInvalidRange
	}
	return Range{Start: start.UTC(), End: end.UTC()}, nil
}

// Must is New for values known to be valid.
func Must(start, end time.Time) Range {
	r, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Range) Duration() time.Duration {
	if r.IsEmpty() {
		return 0
	}
	return r.End.Sub(r.Start)
}

func (r Range) IsEmpty() bool {
	return !r.Start.Before(r.End)
}

func (r Range) Overlaps(o Range) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return !o.Start.Before(r.Start) && !o.End.After(r.End)
}

func (r Range) ContainsInstant(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

func (r Range) Intersect(o Range) (Range, bool) {
	start := r.Start
	if o.Start.After(start) {
		start = o.Start
	}
	end := r.End
	if o.End.Before(end) {
		end = o.End
	}
	if !start.Before(end) {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// Expand widens the range by before on the start side and after on the end side.
func (r Range) Expand(before, after time.Duration) Range {
	return Range{Start: r.Start.Add(-before), End: r.End.Add(after)}
}

func (r Range) UTC() Range {
	return Range{Start: r.Start.UTC(), End: r.End.UTC()}
}

func (r Range) Equal(o Range) bool {
	return r.Start.Equal(o.Start) && r.End.Equal(o.End)
}

func (r Range) String() string {
	return "[" + r.Start.UTC().Format(time.RFC3339) + ", " + r.End.UTC().Format(time.RFC3339) + ")"
}

// Subtract returns the ordered parts of r not covered by any of busy.
func (r Range) Subtract(busy []Range) []Range {
	if r.IsEmpty() {
		return nil
	}
	free := []Range{r}
	for _, b := range Normalize(busy) {
		if !b.Overlaps(free[len(free)-1]) {
			continue
		}
		last := free[len(free)-1]
		free = free[:len(free)-1]
		if last.Start.Before(b.Start) {
			free = append(free, Range{Start: last.Start, End: b.Start})
		}
		if b.End.Before(last.End) {
			free = append(free, Range{Start: b.End, End: last.End})
		}
		if len(free) == 0 {
			return nil
		}
	}
	return free
}

// Normalize sorts ranges and merges those that overlap or touch. Empty ranges are dropped.
func Normalize(rs []Range) []Range {
	out := make([]Range, 0, len(rs))
	for _, r := range rs {
		if !r.IsEmpty() {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil
	}
	slices.SortFunc(out, Compare)

	merged := out[:1]
	for _, r := range out[1:] {
		last := &merged[len(merged)-1]
		if !r.Start.After(last.End) {
			if r.End.After(last.End) {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// SubtractAll removes busy from every range in free.
func SubtractAll(free, busy []Range) []Range {
	var out []Range
	for _, f := range Normalize(free) {
		out = append(out, f.Subtract(busy)...)
	}
	return out
}

// Clip intersects each range with window, dropping those outside it.
func Clip(rs []Range, window Range) []Range {
	var out []Range
	for _, r := range rs {
		if c, ok := r.Intersect(window); ok {
			out = append(out, c)
		}
	}
	return out
}

// AnyOverlap reports whether r overlaps at least one of others.
func (r Range) AnyOverlap(others []Range) bool {
	for _, o := range others {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}

func Compare(a, b Range) int {
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	return a.End.Compare(b.End)
}
