//go:build unit

package timerange_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/timerange"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func rng(h1, m1, h2, m2 int) timerange.Range {
	return timerange.Must(at(h1, m1), at(h2, m2))
}

func TestNew(t *testing.T) {
	_, err := timerange.New(at(10, 0), at(10, 0))
	assert.ErrorIs(t, err, timerange.ErrInvalidRange)

	_, err = timerange.New(at(11, 0), at(10, 0))
	assert.ErrorIs(t, err, timerange.ErrInvalidRange)

	r, err := timerange.New(at(9, 0), at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, r.Duration())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b timerange.Range
		want bool
	}{
		{name: "touching edges do not overlap", a: rng(9, 0, 10, 0), b: rng(10, 0, 11, 0), want: false},
		{name: "partial overlap", a: rng(9, 0, 10, 0), b: rng(9, 30, 10, 30), want: true},
		{name: "containment", a: rng(9, 0, 12, 0), b: rng(10, 0, 11, 0), want: true},
		{name: "disjoint", a: rng(9, 0, 10, 0), b: rng(11, 0, 12, 0), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestIntersect(t *testing.T) {
	got, ok := rng(9, 0, 11, 0).Intersect(rng(10, 0, 12, 0))
	require.True(t, ok)
	assert.True(t, got.Equal(rng(10, 0, 11, 0)))

	_, ok = rng(9, 0, 10, 0).Intersect(rng(10, 0, 11, 0))
	assert.False(t, ok)
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name string
		r    timerange.Range
		busy []timerange.Range
		want []timerange.Range
	}{
		{
			name: "no busy time",
			r:    rng(9, 0, 17, 0),
			want: []timerange.Range{rng(9, 0, 17, 0)},
		},
		{
			name: "busy in the middle splits the range",
			r:    rng(9, 0, 17, 0),
			busy: []timerange.Range{rng(10, 0, 10, 30)},
			want: []timerange.Range{rng(9, 0, 10, 0), rng(10, 30, 17, 0)},
		},
		{
			name: "unsorted overlapping busy ranges",
			r:    rng(9, 0, 17, 0),
			busy: []timerange.Range{rng(15, 0, 18, 0), rng(8, 0, 9, 30), rng(12, 0, 13, 0), rng(12, 30, 13, 30)},
			want: []timerange.Range{rng(9, 30, 12, 0), rng(13, 30, 15, 0)},
		},
		{
			name: "busy covers everything",
			r:    rng(9, 0, 10, 0),
			busy: []timerange.Range{rng(8, 0, 11, 0)},
			want: nil,
		},
		{
			name: "busy touching the edges removes nothing",
			r:    rng(9, 0, 10, 0),
			busy: []timerange.Range{rng(8, 0, 9, 0), rng(10, 0, 11, 0)},
			want: []timerange.Range{rng(9, 0, 10, 0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Subtract(tt.busy)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Subtract mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	got := timerange.Normalize([]timerange.Range{
		rng(13, 0, 14, 0),
		rng(9, 0, 10, 0),
		rng(10, 0, 11, 0),
		{Start: at(12, 0), End: at(12, 0)},
		rng(9, 30, 9, 45),
	})
	want := []timerange.Range{rng(9, 0, 11, 0), rng(13, 0, 14, 0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, timerange.Normalize(nil))
}

func TestClipAndExpand(t *testing.T) {
	clipped := timerange.Clip([]timerange.Range{rng(8, 0, 10, 0), rng(11, 0, 12, 0), rng(15, 0, 16, 0)}, rng(9, 0, 12, 0))
	want := []timerange.Range{rng(9, 0, 10, 0), rng(11, 0, 12, 0)}
	if diff := cmp.Diff(want, clipped); diff != "" {
		t.Errorf("Clip mismatch (-want +got):\n%s", diff)
	}

	expanded := rng(10, 0, 10, 30).Expand(15*time.Minute, 5*time.Minute)
	assert.True(t, expanded.Equal(rng(9, 45, 10, 35)))
}
