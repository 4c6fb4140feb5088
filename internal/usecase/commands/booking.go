package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/eventtype"
	"slotbook/internal/domain/host"
	"slotbook/internal/domain/slot"
	"slotbook/internal/domain/timerange"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrSlotNotOffered = errs.Mark(errs.New("slot is not within the host's availability"), errs.ErrInvalidSlot)
	ErrSlotOffGrid    = errs.Mark(errs.New("slot is not aligned to the event type's slot grid"), errs.ErrInvalidSlot)
)

// ConflictError reports a slot taken by a concurrent booking or busy time,
// with freshly generated alternatives.
type ConflictError struct {
	Slot         slot.Slot
	Alternatives []slot.Slot
	cause        error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s is no longer available", e.Slot.Range())
}

func (e *ConflictError) Is(target error) bool { return target == errs.ErrConflict }

func (e *ConflictError) Unwrap() error { return e.cause }

type ReserveRequest struct {
	HostID        uuid.UUID
	EventTypeID   uuid.UUID
	SlotStart     time.Time
	AttendeeName  string
	AttendeeEmail string
	Notes         string
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock
type BookingCommands interface {
	// Reserve books a generated slot. A taken slot fails with *ConflictError.
	Reserve(ctx context.Context, req ReserveRequest) (*queries.BookingView, error)
	// Cancel frees a booking's range. Cancelling twice is a no-op.
	Cancel(ctx context.Context, id uuid.UUID, reason string) error
}

type state string

const (
	stateRequested  state = "requested"
	stateValidating state = "validating"
	stateReserving  state = "reserving"
	stateConfirmed  state = "confirmed"
	stateRejected   state = "rejected"
)

type bookingCoordinator struct {
	slots     *queries.SlotGenerator
	ledger    shared.ReservationLedger
	publisher shared.EventPublisher
	clock     clock.Clock
	cfg       config.BookingConfig
	logger    *slog.Logger
	tracer    trace.Tracer
}

func NewBookingCoordinator(
	slots *queries.SlotGenerator,
	ledger shared.ReservationLedger,
	publisher shared.EventPublisher,
	clk clock.Clock,
	cfg config.BookingConfig,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCoordinator{
		slots:     slots,
		ledger:    ledger,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
		tracer:    otel.Tracer("slotbook/usecase/commands"),
	}
}

func (c *bookingCoordinator) Reserve(ctx context.Context, req ReserveRequest) (_ *queries.BookingView, err error) {
	ctx, span := c.tracer.Start(ctx, "BookingCoordinator.Reserve", trace.WithAttributes(
		attribute.String("host.id", req.HostID.String()),
		attribute.String("event_type.id", req.EventTypeID.String()),
		attribute.String("slot.start", req.SlotStart.UTC().Format(time.RFC3339)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	log := c.logger.With("host_id", req.HostID, "event_type_id", req.EventTypeID, "slot_start", req.SlotStart.UTC())
	transition(log, stateRequested)

	attendee, err := booking.NewAttendee(req.AttendeeName, req.AttendeeEmail, req.Notes)
	if err != nil {
		return nil, errs.Validation(err)
	}

	transition(log, stateValidating)
	h, et, err := c.slots.Target(ctx, req.HostID, req.EventTypeID)
	if err != nil {
		return nil, c.reject(log, err)
	}
	requested := slot.Slot{Start: req.SlotStart.UTC(), End: req.SlotStart.UTC().Add(et.Duration())}
	date := availability.DateOf(requested.Start, h.Location())

	plan, err := c.slots.Plan(ctx, h, et, dayWindow(date, h.Location()))
	if err != nil {
		return nil, c.reject(log, err)
	}
	switch verdict := plan.Day(date).Classify(requested); verdict {
	case slot.Bookable:
	case slot.Busy:
		return nil, c.reject(log, c.conflict(ctx, h, et, requested, nil))
	case slot.OffGrid:
		return nil, c.reject(log, ErrSlotOffGrid)
	default:
		return nil, c.reject(log, ErrSlotNotOffered)
	}

	transition(log, stateReserving)
	pending, err := booking.NewBooking(h.ID(), et.ID(), requested.Start, booking.Spec{
		Duration:     et.Duration(),
		BufferBefore: et.BufferBefore(),
		BufferAfter:  et.BufferAfter(),
	}, attendee, c.clock.Now())
	if err != nil {
		return nil, c.reject(log, errs.Validation(err))
	}

	reserveCtx, cancel := context.WithTimeout(ctx, c.cfg.ReservationTimeout)
	stored, err := c.ledger.TryReserve(reserveCtx, pending)
	cancel()
	switch {
	case err == nil:
	case errs.Is(err, errs.ErrConflict):
		return nil, c.reject(log, c.conflict(ctx, h, et, requested, err))
	case errs.Is(err, errs.ErrReservationTimeout), errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		return nil, c.reject(log, errs.Mark(errs.Wrap(err, "reserve slot"), errs.ErrReservationTimeout))
	default:
		return nil, c.reject(log, err)
	}

	transition(log, stateConfirmed, "booking_id", stored.ID())
	span.SetAttributes(attribute.String("booking.id", stored.ID().String()))
	c.publish(ctx, shared.EventBookingConfirmed, stored)

	return queries.NewBookingView(stored)
}

func (c *bookingCoordinator) Cancel(ctx context.Context, id uuid.UUID, reason string) (err error) {
	ctx, span := c.tracer.Start(ctx, "BookingCoordinator.Cancel", trace.WithAttributes(
		attribute.String("booking.id", id.String()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	cancelled, err := c.ledger.Cancel(ctx, id, reason, c.clock.Now())
	switch {
	case err == nil:
	case errors.Is(err, booking.ErrAlreadyCancelled):
		c.logger.Debug("booking already cancelled", "booking_id", id)
		return nil
	case errors.Is(err, booking.ErrCancelReasonLong):
		return errs.Validation(err)
	default:
		return err
	}

	c.logger.Info("booking cancelled", "booking_id", id, "host_id", cancelled.HostID())
	c.publish(ctx, shared.EventBookingCancelled, cancelled)
	return nil
}

// conflict builds a ConflictError with up to AlternativeLimit slots from the
// requested day onwards. Failing to compute alternatives does not hide the
// conflict.
func (c *bookingCoordinator) conflict(ctx context.Context, h *host.Host, et *eventtype.EventType, requested slot.Slot, cause error) error {
	from := availability.DateOf(requested.Start, h.Location())
	days := max(c.cfg.AlternativeLookaheadDays, 1)
	window := timerange.Range{
		Start: from.StartIn(h.Location()).UTC(),
		End:   from.AddDays(days).StartIn(h.Location()).UTC(),
	}

	cerr := &ConflictError{Slot: requested, cause: cause}
	plan, err := c.slots.Plan(ctx, h, et, window)
	if err != nil {
		c.logger.Warn("failed to compute alternative slots", "host_id", h.ID(), "error", err.Error())
		return cerr
	}
	for s := range plan.Slots() {
		if len(cerr.Alternatives) >= c.cfg.AlternativeLimit {
			break
		}
		if !s.Equal(requested) {
			cerr.Alternatives = append(cerr.Alternatives, s)
		}
	}
	return cerr
}

func (c *bookingCoordinator) publish(ctx context.Context, kind shared.EventKind, b *booking.Booking) {
	evt := shared.NewBookingEvent(kind, b, c.clock.Now())
	if err := c.publisher.Publish(ctx, evt); err != nil {
		// the booking is committed; downstream consumers can be replayed
		c.logger.Error("failed to publish booking event",
			"kind", kind, "booking_id", b.ID(), "error", err.Error())
	}
}

func (c *bookingCoordinator) reject(log *slog.Logger, err error) error {
	transition(log, stateRejected, "reason", rejectReason(err), "error", err.Error())
	return err
}

func transition(log *slog.Logger, to state, args ...any) {
	log.Info("booking state", append([]any{"state", string(to)}, args...)...)
}

func rejectReason(err error) string {
	switch {
	case errs.Is(err, errs.ErrConflict):
		return "conflict"
	case errs.Is(err, errs.ErrInvalidSlot):
		return "invalid_slot"
	case errs.Is(err, errs.ErrEventTypeInactive):
		return "event_type_inactive"
	case errs.Is(err, errs.ErrReservationTimeout):
		return "timeout"
	case errs.Is(err, errs.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// dayWindow covers one host-local date.
func dayWindow(d availability.Date, loc *time.Location) timerange.Range {
	return timerange.Range{Start: d.StartIn(loc).UTC(), End: d.AddDays(1).StartIn(loc).UTC()}
}
