package request

import (
	"time"

	"slotbook/internal/domain/timerange"
	"slotbook/internal/usecase/commands"
)

// IntervalRequest holds wall-clock times in the host's timezone ("HH:MM").
type IntervalRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type WeeklyDayRequest struct {
	DayOfWeek string            `json:"dayOfWeek" binding:"required"`
	Intervals []IntervalRequest `json:"intervals" binding:"dive"`
}

type WeeklyAvailabilityRequest struct {
	Days []WeeklyDayRequest `json:"days" binding:"required,max=7,dive"`
}

func (r WeeklyAvailabilityRequest) ToInput() []commands.WeeklyRuleInput {
	out := make([]commands.WeeklyRuleInput, 0, len(r.Days))
	for _, d := range r.Days {
		out = append(out, commands.WeeklyRuleInput{
			DayOfWeek: d.DayOfWeek,
			Intervals: toIntervalInputs(d.Intervals),
		})
	}
	return out
}

type OverrideRequest struct {
	StartDate string            `json:"startDate" binding:"required"`
	EndDate   string            `json:"endDate"`
	Status    string            `json:"status" binding:"required,oneof=available unavailable out_of_office"`
	Intervals []IntervalRequest `json:"intervals" binding:"dive"`
}

func (r OverrideRequest) ToInput() commands.OverrideInput {
	return commands.OverrideInput{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Status:    r.Status,
		Intervals: toIntervalInputs(r.Intervals),
	}
}

func toIntervalInputs(in []IntervalRequest) []commands.IntervalInput {
	out := make([]commands.IntervalInput, 0, len(in))
	for _, iv := range in {
		out = append(out, commands.IntervalInput{Start: iv.Start, End: iv.End})
	}
	return out
}

type BusyBlockRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

// BusySyncRequest replaces every busy block overlapping [from, to).
type BusySyncRequest struct {
	From   time.Time          `json:"from" binding:"required"`
	To     time.Time          `json:"to" binding:"required"`
	Blocks []BusyBlockRequest `json:"blocks" binding:"dive"`
}

func (r BusySyncRequest) Ranges() (timerange.Range, []timerange.Range, error) {
	window, err := timerange.New(r.From, r.To)
	if err != nil {
		return timerange.Range{}, nil, err
	}
	blocks := make([]timerange.Range, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		rg, err := timerange.New(b.Start, b.End)
		if err != nil {
			return timerange.Range{}, nil, err
		}
		blocks = append(blocks, rg)
	}
	return window, blocks, nil
}
