package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/timerange"
	"slotbook/internal/infra"
	"slotbook/internal/infra/postgres/pgq"
	"slotbook/internal/infra/uow"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	errOverlap      = errors.New("occupied range overlaps an active booking")
	errStaleBooking = errors.New("booking changed concurrently")
)

const defaultLockLimit = 2 * time.Second

type LedgerQueries interface {
	SetLockTimeout(ctx context.Context, db pgq.DBTX, timeout string) error
	AcquireHostLock(ctx context.Context, db pgq.DBTX, hostID uuid.UUID) error
	HasActiveOverlap(ctx context.Context, db pgq.DBTX, arg pgq.OccupiedParams) (bool, error)
	InsertBooking(ctx context.Context, db pgq.DBTX, arg pgq.Booking) error
	GetBookingByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Booking, error)
	GetBookingForUpdate(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Booking, error)
	CancelBooking(ctx context.Context, db pgq.DBTX, arg pgq.CancelBookingParams) (int64, error)
	ListActiveBookings(ctx context.Context, db pgq.DBTX, arg pgq.OccupiedParams) ([]pgq.Booking, error)
	ListUpcomingBookings(ctx context.Context, db pgq.DBTX, arg pgq.ListBookingsParams) ([]pgq.Booking, error)
	ListPastBookings(ctx context.Context, db pgq.DBTX, arg pgq.ListBookingsParams) ([]pgq.Booking, error)
}

// Ledger stores bookings and serializes reservations per host with a
// transaction-scoped advisory lock bounded by lock_timeout.
type Ledger struct {
	queries LedgerQueries
	uow     *uow.PostgresUoW
	clock   clock.Clock
	logger  *slog.Logger
}

func NewLedger(queries *pgq.Queries, u *uow.PostgresUoW, clk clock.Clock, logger *slog.Logger) *Ledger {
	return &Ledger{queries: queries, uow: u, clock: clk, logger: logger}
}

func (l *Ledger) TryReserve(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	stored := b.Clone()
	err := l.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := l.lockHost(ctx, tx, b.HostID()); err != nil {
			return err
		}

		occupied := b.Occupied()
		overlaps, err := l.queries.HasActiveOverlap(ctx, tx, pgq.OccupiedParams{
			HostID: b.HostID(), Start: occupied.Start, End: occupied.End,
		})
		if err != nil {
			return err
		}
		if overlaps {
			return errOverlap
		}

		// confirmed under the lock; a retry starts from a fresh pending copy
		stored = b.Clone()
		if err := stored.Confirm(l.clock.Now()); err != nil {
			return err
		}
		return l.queries.InsertBooking(ctx, tx, bookingToRow(stored))
	})
	switch {
	case err == nil:
		return stored, nil
	case errors.Is(err, errOverlap):
		return nil, infra.WrapRepoErr(l.logger, infra.KindConflict, errOverlap.Error(), nil)
	case errors.Is(err, booking.ErrNotPending):
		return nil, err
	default:
		return nil, mapErr(l.logger, "failed to reserve booking", err)
	}
}

// lockHost takes the per-host advisory lock, waiting no longer than the
// caller's deadline allows.
func (l *Ledger) lockHost(ctx context.Context, tx pgx.Tx, hostID uuid.UUID) error {
	wait := defaultLockLimit
	if deadline, ok := ctx.Deadline(); ok {
		wait = time.Until(deadline)
		if wait <= 0 {
			return context.DeadlineExceeded
		}
	}
	if err := l.queries.SetLockTimeout(ctx, tx, fmt.Sprintf("%dms", max(wait.Milliseconds(), 1))); err != nil {
		return err
	}
	return l.queries.AcquireHostLock(ctx, tx, hostID)
}

func (l *Ledger) Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := l.queries.GetBookingByID(ctx, l.uow.DB(), id)
	if err != nil {
		return nil, mapErr(l.logger, "booking not found", err)
	}
	b, err := bookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(l.logger, infra.KindDBFailure, "stored booking is invalid", err)
	}
	return b, nil
}

func (l *Ledger) Cancel(ctx context.Context, id uuid.UUID, reason string, at time.Time) (*booking.Booking, error) {
	var updated *booking.Booking
	err := l.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		row, err := l.queries.GetBookingForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		b, err := bookingFromRow(row)
		if err != nil {
			return err
		}
		prevVersion := b.Version()
		if err := b.Cancel(reason, at); err != nil {
			return err
		}
		n, err := l.queries.CancelBooking(ctx, tx, pgq.CancelBookingParams{
			ID:           id,
			Status:       b.Status().String(),
			CancelReason: b.CancelReason(),
			CancelledAt:  pgconv.TimePtrToPgtype(b.CancelledAt()),
			UpdatedAt:    b.UpdatedAt(),
			Version:      int32(b.Version()), // #nosec G115 -- bumped once per cancel
			PrevVersion:  int32(prevVersion), // #nosec G115
		})
		if err != nil {
			return err
		}
		if n == 0 {
			return errStaleBooking
		}
		updated = b
		return nil
	})
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, booking.ErrAlreadyCancelled), errors.Is(err, booking.ErrCancelReasonLong):
		return nil, err
	case errors.Is(err, errStaleBooking):
		return nil, infra.WrapRepoErr(l.logger, infra.KindConflict, errStaleBooking.Error(), nil)
	default:
		return nil, mapErr(l.logger, "failed to cancel booking", err)
	}
}

func (l *Ledger) ListActive(ctx context.Context, hostID uuid.UUID, window timerange.Range) ([]*booking.Booking, error) {
	rows, err := l.queries.ListActiveBookings(ctx, l.uow.DB(), pgq.OccupiedParams{
		HostID: hostID, Start: window.Start, End: window.End,
	})
	return l.toDomain("failed to list active bookings", rows, err)
}

func (l *Ledger) ListByHost(ctx context.Context, hostID uuid.UUID, scope shared.BookingScope, now time.Time, limit int) ([]*booking.Booking, error) {
	if limit <= 0 {
		limit = 100
	}
	arg := pgq.ListBookingsParams{HostID: hostID, Now: now, Limit: int32(min(limit, math.MaxInt32))} // #nosec G115
	if scope == shared.ScopePast {
		rows, err := l.queries.ListPastBookings(ctx, l.uow.DB(), arg)
		return l.toDomain("failed to list past bookings", rows, err)
	}
	rows, err := l.queries.ListUpcomingBookings(ctx, l.uow.DB(), arg)
	return l.toDomain("failed to list upcoming bookings", rows, err)
}

func (l *Ledger) toDomain(msg string, rows []pgq.Booking, err error) ([]*booking.Booking, error) {
	if err != nil {
		return nil, mapErr(l.logger, msg, err)
	}
	var out []*booking.Booking
	for _, row := range rows {
		b, err := bookingFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr(l.logger, infra.KindDBFailure, "stored booking is invalid", err)
		}
		out = append(out, b)
	}
	return out, nil
}

func bookingToRow(b *booking.Booking) pgq.Booking {
	a := b.Attendee()
	return pgq.Booking{
		ID:                  b.ID(),
		HostID:              b.HostID(),
		EventTypeID:         b.EventTypeID(),
		SlotStart:           b.SlotStart(),
		DurationMinutes:     pgconv.Minutes(b.Duration()),
		BufferBeforeMinutes: pgconv.Minutes(b.BufferBefore()),
		BufferAfterMinutes:  pgconv.Minutes(b.BufferAfter()),
		AttendeeName:        a.Name(),
		AttendeeEmail:       a.Email(),
		AttendeeNotes:       a.Notes(),
		Status:              b.Status().String(),
		CancelReason:        b.CancelReason(),
		CreatedAt:           b.CreatedAt(),
		UpdatedAt:           b.UpdatedAt(),
		CancelledAt:         pgconv.TimePtrToPgtype(b.CancelledAt()),
		Version:             int32(b.Version()), // #nosec G115
	}
}

func bookingFromRow(row pgq.Booking) (*booking.Booking, error) {
	st, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	attendee, err := booking.NewAttendee(row.AttendeeName, row.AttendeeEmail, row.AttendeeNotes)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(row.ID, row.HostID, row.EventTypeID, row.SlotStart.UTC(),
		booking.Spec{
			Duration:     pgconv.Duration(row.DurationMinutes),
			BufferBefore: pgconv.Duration(row.BufferBeforeMinutes),
			BufferAfter:  pgconv.Duration(row.BufferAfterMinutes),
		},
		attendee, st, row.CancelReason, row.CreatedAt.UTC(), row.UpdatedAt.UTC(),
		pgconv.TimePtrFromPgtype(row.CancelledAt), int(row.Version)), nil
}
