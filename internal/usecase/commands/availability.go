package commands

import (
	"context"
	"log/slog"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/timerange"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type IntervalInput struct {
	Start string
	End   string
}

type WeeklyRuleInput struct {
	DayOfWeek string
	Intervals []IntervalInput
}

// OverrideInput applies one override to every date from StartDate to EndDate.
// An empty EndDate means a single date.
type OverrideInput struct {
	StartDate string
	EndDate   string
	Status    string
	Intervals []IntervalInput
}

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/commands/availability_mock.go -package=commandsmock
type AvailabilityCommands interface {
	ReplaceWeeklyRules(ctx context.Context, hostID uuid.UUID, rules []WeeklyRuleInput) ([]queries.WeeklyRuleView, error)
	PutOverrides(ctx context.Context, hostID uuid.UUID, in OverrideInput) ([]queries.OverrideView, error)
	DeleteOverride(ctx context.Context, hostID uuid.UUID, date string) error
	// ReplaceBusy is the calendar-sync feed: every busy block overlapping
	// window is replaced by blocks.
	ReplaceBusy(ctx context.Context, hostID uuid.UUID, window timerange.Range, blocks []timerange.Range) error
}

type availabilityCommandsImpl struct {
	hosts        shared.HostStore
	availability shared.AvailabilityStore
	busy         shared.BusyTimeStore
	maxRangeDays int
	logger       *slog.Logger
}

func NewAvailabilityCommands(
	hosts shared.HostStore,
	availabilityStore shared.AvailabilityStore,
	busy shared.BusyTimeStore,
	maxRangeDays int,
	logger *slog.Logger,
) AvailabilityCommands {
	return &availabilityCommandsImpl{
		hosts:        hosts,
		availability: availabilityStore,
		busy:         busy,
		maxRangeDays: maxRangeDays,
		logger:       logger,
	}
}

var (
	ErrOverrideRangeTooLong = errs.Validation(errs.New("override date range is too long"))
	ErrBusyOutsideWindow    = errs.Validation(errs.New("busy blocks must lie within the window"))
)

func parseIntervals(in []IntervalInput) ([]availability.LocalInterval, error) {
	out := make([]availability.LocalInterval, 0, len(in))
	for _, iv := range in {
		li, err := availability.ParseLocalInterval(iv.Start, iv.End)
		if err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, nil
}

func (c *availabilityCommandsImpl) ReplaceWeeklyRules(ctx context.Context, hostID uuid.UUID, in []WeeklyRuleInput) ([]queries.WeeklyRuleView, error) {
	rules := make([]availability.WeeklyRule, 0, len(in))
	for _, r := range in {
		day, err := availability.ParseWeekday(r.DayOfWeek)
		if err != nil {
			return nil, errs.Validation(err)
		}
		ivs, err := parseIntervals(r.Intervals)
		if err != nil {
			return nil, errs.Validation(err)
		}
		rule, err := availability.NewWeeklyRule(day, ivs)
		if err != nil {
			return nil, errs.Validation(err)
		}
		rules = append(rules, rule)
	}
	week, err := availability.NewWeek(rules)
	if err != nil {
		return nil, errs.Validation(err)
	}

	if _, err := c.hosts.Get(ctx, hostID); err != nil {
		return nil, err
	}
	if err := c.availability.ReplaceWeeklyRules(ctx, hostID, week); err != nil {
		return nil, err
	}
	c.logger.Info("weekly rules replaced", "host_id", hostID)
	return queries.NewWeeklyRuleViews(week), nil
}

func (c *availabilityCommandsImpl) PutOverrides(ctx context.Context, hostID uuid.UUID, in OverrideInput) ([]queries.OverrideView, error) {
	first, err := availability.ParseDate(in.StartDate)
	if err != nil {
		return nil, errs.Validation(err)
	}
	last := first
	if in.EndDate != "" {
		if last, err = availability.ParseDate(in.EndDate); err != nil {
			return nil, errs.Validation(err)
		}
	}
	if c.maxRangeDays > 0 && first.AddDays(c.maxRangeDays).Before(last) {
		return nil, ErrOverrideRangeTooLong
	}
	ivs, err := parseIntervals(in.Intervals)
	if err != nil {
		return nil, errs.Validation(err)
	}
	overrides, err := availability.NewDateRangeOverrides(first, last, availability.OverrideStatus(in.Status), ivs)
	if err != nil {
		return nil, errs.Validation(err)
	}

	if _, err := c.hosts.Get(ctx, hostID); err != nil {
		return nil, err
	}
	if err := c.availability.PutOverrides(ctx, hostID, overrides); err != nil {
		return nil, err
	}
	c.logger.Info("date overrides stored", "host_id", hostID, "from", first.String(), "to", last.String())
	return queries.NewOverrideViews(overrides), nil
}

func (c *availabilityCommandsImpl) DeleteOverride(ctx context.Context, hostID uuid.UUID, date string) error {
	d, err := availability.ParseDate(date)
	if err != nil {
		return errs.Validation(err)
	}
	return c.availability.DeleteOverride(ctx, hostID, d)
}

func (c *availabilityCommandsImpl) ReplaceBusy(ctx context.Context, hostID uuid.UUID, window timerange.Range, blocks []timerange.Range) error {
	if window.IsEmpty() {
		return errs.Validation(timerange.ErrInvalidRange)
	}
	utc := make([]timerange.Range, 0, len(blocks))
	for _, b := range blocks {
		if b.IsEmpty() {
			return errs.Validation(timerange.ErrInvalidRange)
		}
		if !window.Contains(b) {
			return ErrBusyOutsideWindow
		}
		utc = append(utc, b.UTC())
	}
	if _, err := c.hosts.Get(ctx, hostID); err != nil {
		return err
	}
	if err := c.busy.ReplaceBusy(ctx, hostID, window.UTC(), utc); err != nil {
		return err
	}
	c.logger.Info("busy blocks replaced", "host_id", hostID, "window", window.String(), "count", len(blocks))
	return nil
}
