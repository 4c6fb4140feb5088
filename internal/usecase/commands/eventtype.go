package commands

import (
	"context"
	"log/slog"
	"math"
	"time"

	"slotbook/internal/domain/eventtype"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/patch"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEventTypeNotFound = errs.Mark(errs.New("event type not found"), errs.ErrNotFound)
	ErrEmptyPatch        = errs.Validation(errs.New("at least one field must be provided"))
)

type EventTypeInput struct {
	Title                string
	Slug                 string
	Description          string
	DurationMinutes      int
	BufferBeforeMinutes  int
	BufferAfterMinutes   int
	SlotStepMinutes      int
	MinimumNoticeMinutes int
	Active               *bool
}

// EventTypePatch is a partial update; nil fields keep their current value.
type EventTypePatch struct {
	Title                *string
	Slug                 *string
	Description          *string
	DurationMinutes      *int
	BufferBeforeMinutes  *int
	BufferAfterMinutes   *int
	SlotStepMinutes      *int
	MinimumNoticeMinutes *int
	Active               *bool
}

func (p EventTypePatch) empty() bool {
	return !patch.Any(
		p.Title != nil, p.Slug != nil, p.Description != nil,
		p.DurationMinutes != nil, p.BufferBeforeMinutes != nil, p.BufferAfterMinutes != nil,
		p.SlotStepMinutes != nil, p.MinimumNoticeMinutes != nil, p.Active != nil,
	)
}

//go:generate mockgen -source=eventtype.go -destination=../../../tests/mock/commands/eventtype_mock.go -package=commandsmock
type EventTypeCommands interface {
	Create(ctx context.Context, hostID uuid.UUID, in EventTypeInput) (*queries.EventTypeView, error)
	Update(ctx context.Context, hostID, id uuid.UUID, p EventTypePatch) (*queries.EventTypeView, error)
	Delete(ctx context.Context, hostID, id uuid.UUID) error
}

type eventTypeCommandsImpl struct {
	hosts      shared.HostStore
	eventTypes shared.EventTypeStore
	clock      clock.Clock
	logger     *slog.Logger
}

func NewEventTypeCommands(hosts shared.HostStore, eventTypes shared.EventTypeStore, clk clock.Clock, logger *slog.Logger) EventTypeCommands {
	return &eventTypeCommandsImpl{
		hosts:      hosts,
		eventTypes: eventTypes,
		clock:      clk,
		logger:     logger,
	}
}

// minutesToDuration saturates instead of overflowing so out-of-range input
// still fails domain validation.
func minutesToDuration(m int) time.Duration {
	const limit = math.MaxInt64 / int64(time.Minute)
	switch {
	case int64(m) > limit:
		return math.MaxInt64
	case int64(m) < -limit:
		return math.MinInt64
	}
	return time.Duration(m) * time.Minute
}

func durationToMinutes(d time.Duration) int { return int(d / time.Minute) }

func (c *eventTypeCommandsImpl) Create(ctx context.Context, hostID uuid.UUID, in EventTypeInput) (*queries.EventTypeView, error) {
	et, err := eventtype.NewEventType(hostID, eventtype.Params{
		Title:         in.Title,
		Slug:          in.Slug,
		Description:   in.Description,
		Duration:      minutesToDuration(in.DurationMinutes),
		BufferBefore:  minutesToDuration(in.BufferBeforeMinutes),
		BufferAfter:   minutesToDuration(in.BufferAfterMinutes),
		SlotStep:      minutesToDuration(in.SlotStepMinutes),
		MinimumNotice: minutesToDuration(in.MinimumNoticeMinutes),
		Active:        patch.Coalesce(in.Active, true),
	}, c.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}

	if _, err := c.hosts.Get(ctx, hostID); err != nil {
		return nil, err
	}
	if err := c.eventTypes.Create(ctx, et); err != nil {
		return nil, slugErr(err, et.Slug())
	}
	c.logger.Info("event type created", "host_id", hostID, "event_type_id", et.ID(), "slug", et.Slug())
	return queries.NewEventTypeView(et)
}

func (c *eventTypeCommandsImpl) Update(ctx context.Context, hostID, id uuid.UUID, p EventTypePatch) (*queries.EventTypeView, error) {
	if p.empty() {
		return nil, ErrEmptyPatch
	}
	et, err := c.owned(ctx, hostID, id)
	if err != nil {
		return nil, err
	}

	cur := et.Params()
	next := eventtype.Params{
		Title:         patch.Coalesce(p.Title, cur.Title),
		Slug:          patch.Coalesce(p.Slug, cur.Slug),
		Description:   patch.Coalesce(p.Description, cur.Description),
		Duration:      minutesToDuration(patch.Minutes(p.DurationMinutes, durationToMinutes(cur.Duration))),
		BufferBefore:  minutesToDuration(patch.Minutes(p.BufferBeforeMinutes, durationToMinutes(cur.BufferBefore))),
		BufferAfter:   minutesToDuration(patch.Minutes(p.BufferAfterMinutes, durationToMinutes(cur.BufferAfter))),
		SlotStep:      minutesToDuration(patch.Minutes(p.SlotStepMinutes, durationToMinutes(cur.SlotStep))),
		MinimumNotice: minutesToDuration(patch.Minutes(p.MinimumNoticeMinutes, durationToMinutes(cur.MinimumNotice))),
		Active:        patch.Coalesce(p.Active, cur.Active),
	}
	if err := et.Update(next, c.clock.Now()); err != nil {
		return nil, errs.Validation(err)
	}
	if err := c.eventTypes.Update(ctx, et); err != nil {
		return nil, slugErr(err, et.Slug())
	}
	c.logger.Info("event type updated", "host_id", hostID, "event_type_id", id, "active", et.Active())
	return queries.NewEventTypeView(et)
}

// Delete removes the event type. Existing bookings keep their snapshot.
func (c *eventTypeCommandsImpl) Delete(ctx context.Context, hostID, id uuid.UUID) error {
	if _, err := c.owned(ctx, hostID, id); err != nil {
		return err
	}
	if err := c.eventTypes.Delete(ctx, id); err != nil {
		return err
	}
	c.logger.Info("event type deleted", "host_id", hostID, "event_type_id", id)
	return nil
}

// owned hides other hosts' event types behind not found.
func (c *eventTypeCommandsImpl) owned(ctx context.Context, hostID, id uuid.UUID) (*eventtype.EventType, error) {
	et, err := c.eventTypes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !et.OwnedBy(hostID) {
		return nil, ErrEventTypeNotFound
	}
	return et, nil
}

func slugErr(err error, slug string) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Wrapf(errs.ErrSlugTaken, "slug %q", slug)
	}
	return err
}
