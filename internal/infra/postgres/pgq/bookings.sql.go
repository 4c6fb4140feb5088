package pgq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, host_id, event_type_id, slot_start, duration_minutes,
	buffer_before_minutes, buffer_after_minutes, attendee_name, attendee_email,
	attendee_notes, status, cancel_reason, created_at, updated_at, cancelled_at, version`

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(&b.ID, &b.HostID, &b.EventTypeID, &b.SlotStart, &b.DurationMinutes,
		&b.BufferBeforeMinutes, &b.BufferAfterMinutes, &b.AttendeeName, &b.AttendeeEmail,
		&b.AttendeeNotes, &b.Status, &b.CancelReason, &b.CreatedAt, &b.UpdatedAt, &b.CancelledAt, &b.Version)
	return b, err
}

const setLockTimeout = `SELECT set_config('lock_timeout', $1, true)`

// SetLockTimeout bounds lock waits for the rest of the transaction.
func (q *Queries) SetLockTimeout(ctx context.Context, db DBTX, timeout string) error {
	_, err := db.Exec(ctx, setLockTimeout, timeout)
	return err
}

const acquireHostLock = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

func (q *Queries) AcquireHostLock(ctx context.Context, db DBTX, hostID uuid.UUID) error {
	_, err := db.Exec(ctx, acquireHostLock, hostID.String())
	return err
}

type OccupiedParams struct {
	HostID uuid.UUID
	Start  time.Time
	End    time.Time
}

const hasActiveOverlap = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE host_id = $1 AND status <> 'cancelled'
	  AND occupied && tstzrange($2, $3, '[)'))`

func (q *Queries) HasActiveOverlap(ctx context.Context, db DBTX, arg OccupiedParams) (bool, error) {
	var ok bool
	err := db.QueryRow(ctx, hasActiveOverlap, arg.HostID, arg.Start, arg.End).Scan(&ok)
	return ok, err
}

// The occupied range is rebuilt from the booking columns so the exclusion
// constraint and the domain agree on what a booking blocks.
const insertBooking = `
INSERT INTO bookings (id, host_id, event_type_id, slot_start, duration_minutes,
	buffer_before_minutes, buffer_after_minutes, occupied, attendee_name,
	attendee_email, attendee_notes, status, cancel_reason, created_at,
	updated_at, cancelled_at, version)
VALUES ($1, $2, $3, $4, $5, $6, $7,
	tstzrange(
		$4::timestamptz - make_interval(mins => $6::int),
		$4::timestamptz + make_interval(mins => $5::int + $7::int), '[)'),
	$8, $9, $10, $11, $12, $13, $14, $15, $16)`

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg Booking) error {
	_, err := db.Exec(ctx, insertBooking,
		arg.ID, arg.HostID, arg.EventTypeID, arg.SlotStart,
		arg.DurationMinutes, arg.BufferBeforeMinutes, arg.BufferAfterMinutes,
		arg.AttendeeName, arg.AttendeeEmail, arg.AttendeeNotes, arg.Status, arg.CancelReason,
		arg.CreatedAt, arg.UpdatedAt, arg.CancelledAt, arg.Version)
	return err
}

const getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const getBookingForUpdate = getBookingByID + ` FOR UPDATE`

func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingForUpdate, id))
}

const cancelBooking = `
UPDATE bookings
SET status = $2, cancel_reason = $3, cancelled_at = $4, updated_at = $5, version = $6
WHERE id = $1 AND version = $7`

type CancelBookingParams struct {
	ID           uuid.UUID
	Status       string
	CancelReason string
	CancelledAt  pgtype.Timestamptz
	UpdatedAt    time.Time
	Version      int32
	PrevVersion  int32
}

// CancelBooking applies an optimistic update; zero rows means the version moved.
func (q *Queries) CancelBooking(ctx context.Context, db DBTX, arg CancelBookingParams) (int64, error) {
	tag, err := db.Exec(ctx, cancelBooking,
		arg.ID, arg.Status, arg.CancelReason, arg.CancelledAt, arg.UpdatedAt, arg.Version, arg.PrevVersion)
	return tag.RowsAffected(), err
}

const listActiveBookings = `
SELECT ` + bookingColumns + ` FROM bookings
WHERE host_id = $1 AND status <> 'cancelled'
  AND occupied && tstzrange($2, $3, '[)')
ORDER BY slot_start`

func (q *Queries) ListActiveBookings(ctx context.Context, db DBTX, arg OccupiedParams) ([]Booking, error) {
	rows, err := db.Query(ctx, listActiveBookings, arg.HostID, arg.Start, arg.End)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBooking)
}

type ListBookingsParams struct {
	HostID uuid.UUID
	Now    time.Time
	Limit  int32
}

const listUpcomingBookings = `
SELECT ` + bookingColumns + ` FROM bookings
WHERE host_id = $1
  AND slot_start + make_interval(mins => duration_minutes) > $2
ORDER BY slot_start
LIMIT $3`

func (q *Queries) ListUpcomingBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]Booking, error) {
	rows, err := db.Query(ctx, listUpcomingBookings, arg.HostID, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBooking)
}

const listPastBookings = `
SELECT ` + bookingColumns + ` FROM bookings
WHERE host_id = $1
  AND slot_start + make_interval(mins => duration_minutes) <= $2
ORDER BY slot_start DESC
LIMIT $3`

func (q *Queries) ListPastBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]Booking, error) {
	rows, err := db.Query(ctx, listPastBookings, arg.HostID, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBooking)
}
