package queries

import (
	"context"
	"iter"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/eventtype"
	"slotbook/internal/domain/host"
	"slotbook/internal/domain/slot"
	"slotbook/internal/domain/timerange"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow     = errs.Validation(errs.New("from must be before to"))
	ErrWindowTooLong     = errs.Validation(errs.New("requested range is too long"))
	ErrEventTypeNotOwned = errs.Mark(errs.New("event type does not belong to host"), errs.ErrNotFound)
	ErrNoAvailability    = errs.Mark(errs.New("host has no availability configured"), errs.ErrNotFound)
)

//go:generate mockgen -source=slots.go -destination=../../../tests/mock/queries/slots_mock.go -package=queriesmock
type SlotQueries interface {
	// ListSlots returns the bookable slots in [from, to), ordered by start.
	ListSlots(ctx context.Context, hostID, eventTypeID uuid.UUID, from, to time.Time) ([]SlotView, error)
	// EffectiveIntervals resolves a host's availability for one host-local date, in UTC.
	EffectiveIntervals(ctx context.Context, hostID uuid.UUID, date availability.Date) ([]timerange.Range, error)
}

// SlotGenerator derives bookable slots from availability, bookings and busy
// blocks. Reads are not serialized against reservations; the coordinator
// re-checks under the ledger.
type SlotGenerator struct {
	hosts        shared.HostStore
	availability shared.AvailabilityStore
	eventTypes   shared.EventTypeStore
	busy         shared.BusyTimeStore
	ledger       shared.ReservationLedger
	clock        clock.Clock
	cfg          config.BookingConfig
}

func NewSlotGenerator(
	hosts shared.HostStore,
	availabilityStore shared.AvailabilityStore,
	eventTypes shared.EventTypeStore,
	busy shared.BusyTimeStore,
	ledger shared.ReservationLedger,
	clk clock.Clock,
	cfg config.BookingConfig,
) *SlotGenerator {
	return &SlotGenerator{
		hosts:        hosts,
		availability: availabilityStore,
		eventTypes:   eventTypes,
		busy:         busy,
		ledger:       ledger,
		clock:        clk,
		cfg:          cfg,
	}
}

// Target loads the host and one of its event types. Inactive event types
// fail with errs.ErrEventTypeInactive.
func (g *SlotGenerator) Target(ctx context.Context, hostID, eventTypeID uuid.UUID) (*host.Host, *eventtype.EventType, error) {
	h, err := g.hosts.Get(ctx, hostID)
	if err != nil {
		return nil, nil, err
	}
	et, err := g.eventTypes.Get(ctx, eventTypeID)
	if err != nil {
		return nil, nil, err
	}
	if !et.OwnedBy(hostID) {
		return nil, nil, ErrEventTypeNotOwned
	}
	if !et.Active() {
		return nil, nil, errs.Wrapf(errs.ErrEventTypeInactive, "event type %s", et.Slug())
	}
	return h, et, nil
}

// Schedule loads the weekly rules and the overrides between first and last.
func (g *SlotGenerator) Schedule(ctx context.Context, h *host.Host, first, last availability.Date) (*availability.Schedule, error) {
	configured, err := g.availability.HasRules(ctx, h.ID())
	if err != nil {
		return nil, err
	}
	if !configured {
		return nil, ErrNoAvailability
	}
	weekly, err := g.availability.WeeklyRules(ctx, h.ID())
	if err != nil {
		return nil, err
	}
	overrides, err := g.availability.Overrides(ctx, h.ID(), first, last)
	if err != nil {
		return nil, err
	}
	return availability.NewSchedule(h.ID(), h.Location(), weekly, overrides), nil
}

// Plan gathers everything slot generation needs for window in one pass over
// the stores.
func (g *SlotGenerator) Plan(ctx context.Context, h *host.Host, et *eventtype.EventType, window timerange.Range) (*Plan, error) {
	loc := h.Location()
	first := availability.DateOf(window.Start, loc)
	last := availability.DateOf(window.End.Add(-time.Nanosecond), loc)

	schedule, err := g.Schedule(ctx, h, first, last)
	if err != nil {
		return nil, err
	}

	// slot grids are anchored per whole day, so occupied time is loaded for
	// every date the window touches, not just the window itself
	days := timerange.Range{Start: first.StartIn(loc).UTC(), End: last.AddDays(1).StartIn(loc).UTC()}
	lookup := days.Expand(et.BufferBefore(), et.BufferAfter())
	bookings, err := g.ledger.ListActive(ctx, h.ID(), lookup)
	if err != nil {
		return nil, err
	}
	busy, err := g.busy.Busy(ctx, h.ID(), lookup)
	if err != nil {
		return nil, err
	}
	occupied := make([]timerange.Range, 0, len(bookings)+len(busy))
	for _, b := range bookings {
		occupied = append(occupied, b.Occupied())
	}
	occupied = append(occupied, busy...)

	return &Plan{
		schedule:  schedule,
		eventType: et,
		window:    window,
		first:     first,
		last:      last,
		occupied:  timerange.Normalize(occupied),
		notBefore: g.clock.Now().Add(et.MinimumNotice()),
	}, nil
}

// Slots is the lazy form of ListSlots. Loading errors are yielded once, after
// which the sequence ends.
func (g *SlotGenerator) Slots(ctx context.Context, hostID, eventTypeID uuid.UUID, from, to time.Time) iter.Seq2[slot.Slot, error] {
	return func(yield func(slot.Slot, error) bool) {
		window, err := g.window(from, to)
		if err != nil {
			yield(slot.Slot{}, err)
			return
		}
		h, et, err := g.Target(ctx, hostID, eventTypeID)
		if err != nil {
			yield(slot.Slot{}, err)
			return
		}
		plan, err := g.Plan(ctx, h, et, window)
		if err != nil {
			yield(slot.Slot{}, err)
			return
		}
		for s := range plan.Slots() {
			if err := ctx.Err(); err != nil {
				yield(slot.Slot{}, err)
				return
			}
			if !yield(s, nil) {
				return
			}
		}
	}
}

func (g *SlotGenerator) ListSlots(ctx context.Context, hostID, eventTypeID uuid.UUID, from, to time.Time) ([]SlotView, error) {
	var out []slot.Slot
	for s, err := range g.Slots(ctx, hostID, eventTypeID, from, to) {
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return NewSlotViews(out), nil
}

func (g *SlotGenerator) EffectiveIntervals(ctx context.Context, hostID uuid.UUID, date availability.Date) ([]timerange.Range, error) {
	h, err := g.hosts.Get(ctx, hostID)
	if err != nil {
		return nil, err
	}
	schedule, err := g.Schedule(ctx, h, date, date)
	if err != nil {
		return nil, err
	}
	return schedule.EffectiveIntervals(date), nil
}

func (g *SlotGenerator) window(from, to time.Time) (timerange.Range, error) {
	if !from.Before(to) {
		return timerange.Range{}, ErrInvalidWindow
	}
	if limit := time.Duration(g.cfg.MaxRangeDays) * 24 * time.Hour; limit > 0 && to.Sub(from) > limit {
		return timerange.Range{}, errs.Wrapf(ErrWindowTooLong, "at most %d days", g.cfg.MaxRangeDays)
	}
	return timerange.Range{Start: from.UTC(), End: to.UTC()}, nil
}

// Plan is a loaded snapshot of one host and event type over a window.
type Plan struct {
	schedule  *availability.Schedule
	eventType *eventtype.EventType
	window    timerange.Range
	first     availability.Date
	last      availability.Date
	occupied  []timerange.Range
	notBefore time.Time
}

// Day returns the slot computation for one host-local date. Availability is
// not clipped to the window so the slot grid stays anchored to interval starts.
func (p *Plan) Day(date availability.Date) slot.Day {
	et := p.eventType
	return slot.Day{
		Available:    p.schedule.EffectiveIntervals(date),
		Occupied:     p.occupied,
		Duration:     et.Duration(),
		Step:         et.Step(),
		BufferBefore: et.BufferBefore(),
		BufferAfter:  et.BufferAfter(),
		NotBefore:    p.notBefore,
	}
}

// DayOf is the host-local date containing t.
func (p *Plan) DayOf(t time.Time) availability.Date {
	return availability.DateOf(t, p.schedule.Location())
}

func (p *Plan) Slots() iter.Seq[slot.Slot] {
	return p.SlotsFrom(p.first)
}

// SlotsFrom yields the slots inside the window of every date from first on.
func (p *Plan) SlotsFrom(first availability.Date) iter.Seq[slot.Slot] {
	return func(yield func(slot.Slot) bool) {
		for d := first; !d.After(p.last); d = d.AddDays(1) {
			for s := range p.Day(d).Slots() {
				if !p.window.Contains(s.Range()) {
					continue
				}
				if !yield(s) {
					return
				}
			}
		}
	}
}
