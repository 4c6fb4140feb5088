//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/timerange"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityCommands(t *testing.T) (commands.AvailabilityCommands, *builder.Fixture) {
	f := builder.NewScheduleBuilder().Build(t)
	cfg := builder.BookingConfig()
	return commands.NewAvailabilityCommands(f.Hosts, f.Availability, f.Busy, cfg.MaxRangeDays, f.Logger), f
}

func TestReplaceWeeklyRules(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the whole week", func(t *testing.T) {
		cmds, f := newAvailabilityCommands(t)

		views, err := cmds.ReplaceWeeklyRules(ctx, f.Host.ID(), []commands.WeeklyRuleInput{
			{DayOfWeek: "tuesday", Intervals: []commands.IntervalInput{{Start: "13:00", End: "15:00"}, {Start: "09:00", End: "11:00"}}},
		})
		require.NoError(t, err)
		require.Len(t, views, 7)
		assert.Empty(t, views[time.Monday].Intervals)
		assert.Equal(t, "09:00", views[time.Tuesday].Intervals[0].Start)

		week, err := f.Availability.WeeklyRules(ctx, f.Host.ID())
		require.NoError(t, err)
		assert.True(t, week[time.Monday].IsUnavailable())
		assert.Len(t, week[time.Tuesday].Intervals(), 2)
	})

	invalid := map[string][]commands.WeeklyRuleInput{
		"unknown weekday":   {{DayOfWeek: "funday"}},
		"end before start":  {{DayOfWeek: "monday", Intervals: []commands.IntervalInput{{Start: "12:00", End: "09:00"}}}},
		"overlapping":       {{DayOfWeek: "monday", Intervals: []commands.IntervalInput{{Start: "09:00", End: "12:00"}, {Start: "11:00", End: "13:00"}}}},
		"duplicate weekday": {{DayOfWeek: "monday"}, {DayOfWeek: "Monday"}},
		"malformed clock":   {{DayOfWeek: "monday", Intervals: []commands.IntervalInput{{Start: "9am", End: "10:00"}}}},
	}
	for name, rules := range invalid {
		t.Run(name, func(t *testing.T) {
			cmds, f := newAvailabilityCommands(t)

			_, err := cmds.ReplaceWeeklyRules(ctx, f.Host.ID(), rules)

			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestPutOverrides(t *testing.T) {
	ctx := context.Background()

	t.Run("date range", func(t *testing.T) {
		cmds, f := newAvailabilityCommands(t)

		views, err := cmds.PutOverrides(ctx, f.Host.ID(), commands.OverrideInput{
			StartDate: "2030-01-07", EndDate: "2030-01-09", Status: "out_of_office",
		})

		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "2030-01-09", views[2].Date)
		stored, err := f.Availability.Overrides(ctx, f.Host.ID(), availability.NewDate(2030, time.January, 1), availability.NewDate(2030, time.January, 31))
		require.NoError(t, err)
		assert.Len(t, stored, 3)
	})

	t.Run("available needs intervals", func(t *testing.T) {
		cmds, f := newAvailabilityCommands(t)

		_, err := cmds.PutOverrides(ctx, f.Host.ID(), commands.OverrideInput{StartDate: "2030-01-07", Status: "available"})

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("range too long", func(t *testing.T) {
		cmds, f := newAvailabilityCommands(t)

		_, err := cmds.PutOverrides(ctx, f.Host.ID(), commands.OverrideInput{
			StartDate: "2030-01-01", EndDate: "2031-01-01", Status: "unavailable",
		})

		assert.True(t, errs.Is(err, commands.ErrOverrideRangeTooLong))
	})

	t.Run("delete", func(t *testing.T) {
		cmds, f := newAvailabilityCommands(t)
		_, err := cmds.PutOverrides(ctx, f.Host.ID(), commands.OverrideInput{StartDate: "2030-01-07", Status: "unavailable"})
		require.NoError(t, err)

		require.NoError(t, cmds.DeleteOverride(ctx, f.Host.ID(), "2030-01-07"))

		stored, err := f.Availability.Overrides(ctx, f.Host.ID(), availability.NewDate(2030, time.January, 7), availability.NewDate(2030, time.January, 7))
		require.NoError(t, err)
		assert.Empty(t, stored)
		assert.True(t, errs.Is(cmds.DeleteOverride(ctx, f.Host.ID(), "07/01/2030"), errs.ErrValidation))
	})
}

func TestReplaceBusy(t *testing.T) {
	ctx := context.Background()
	window := timerange.Range{Start: builder.Monday, End: builder.Monday.Add(24 * time.Hour)}

	t.Run("replaces blocks inside the window", func(t *testing.T) {
		cmds, f := newAvailabilityCommands(t)
		require.NoError(t, cmds.ReplaceBusy(ctx, f.Host.ID(), window, []timerange.Range{
			{Start: builder.At(9, 0), End: builder.At(10, 0)},
		}))

		require.NoError(t, cmds.ReplaceBusy(ctx, f.Host.ID(), window, []timerange.Range{
			{Start: builder.At(14, 0), End: builder.At(15, 0)},
		}))

		busy, err := f.Busy.Busy(ctx, f.Host.ID(), window)
		require.NoError(t, err)
		assert.Equal(t, []timerange.Range{{Start: builder.At(14, 0), End: builder.At(15, 0)}}, busy)
	})

	t.Run("block outside window", func(t *testing.T) {
		cmds, f := newAvailabilityCommands(t)

		err := cmds.ReplaceBusy(ctx, f.Host.ID(), window, []timerange.Range{
			{Start: builder.At(23, 0), End: builder.At(25, 0)},
		})

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("empty window", func(t *testing.T) {
		cmds, f := newAvailabilityCommands(t)

		err := cmds.ReplaceBusy(ctx, f.Host.ID(), timerange.Range{Start: builder.Monday, End: builder.Monday}, nil)

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("unknown host", func(t *testing.T) {
		cmds, _ := newAvailabilityCommands(t)

		err := cmds.ReplaceBusy(ctx, uuid.New(), window, nil)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
