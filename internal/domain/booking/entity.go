package booking

import (
	"errors"
	"time"

	"slotbook/internal/domain/timerange"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration  = errors.New("booking duration must be positive")
	ErrNegativeBuffer   = errors.New("booking buffers must not be negative")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrNotPending       = errors.New("only pending bookings can be confirmed")
	ErrCancelReasonLong = errors.New("cancel reason must be at most 500 characters")
)

const maxCancelReasonRunes = 500

// Booking is a reservation of one slot. slotEnd is always derived from the
// duration snapshot. Bookings are cancelled, never deleted.
type Booking struct {
	id           uuid.UUID
	hostID       uuid.UUID
	eventTypeID  uuid.UUID
	slotStart    time.Time
	spec         Spec
	attendee     Attendee
	status       Status
	cancelReason string
	createdAt    time.Time
	updatedAt    time.Time
	cancelledAt  *time.Time
	version      int
}

func NewBooking(hostID, eventTypeID uuid.UUID, slotStart time.Time, spec Spec, attendee Attendee, now time.Time) (*Booking, error) {
	if spec.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if spec.BufferBefore < 0 || spec.BufferAfter < 0 {
		return nil, ErrNegativeBuffer
	}
	return &Booking{
		id:          uuid.New(),
		hostID:      hostID,
		eventTypeID: eventTypeID,
		slotStart:   slotStart.UTC(),
		spec:        spec,
		attendee:    attendee,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
		version:     1,
	}, nil
}

func Reconstruct(
	id, hostID, eventTypeID uuid.UUID,
	slotStart time.Time,
	spec Spec,
	attendee Attendee,
	status Status,
	cancelReason string,
	createdAt, updatedAt time.Time,
	cancelledAt *time.Time,
	version int,
) *Booking {
	return &Booking{
		id:           id,
		hostID:       hostID,
		eventTypeID:  eventTypeID,
		slotStart:    slotStart.UTC(),
		spec:         spec,
		attendee:     attendee,
		status:       status,
		cancelReason: cancelReason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		cancelledAt:  cancelledAt,
		version:      version,
	}
}

// Confirm is called by the ledger inside its critical section.
func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	b.version++
	return nil
}

func (b *Booking) Cancel(reason string, now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if len([]rune(reason)) > maxCancelReasonRunes {
		return ErrCancelReasonLong
	}
	b.status = StatusCancelled
	b.cancelReason = reason
	b.cancelledAt = &now
	b.updatedAt = now
	b.version++
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status != StatusCancelled
}

func (b *Booking) Slot() timerange.Range {
	return timerange.Range{Start: b.slotStart, End: b.SlotEnd()}
}

// Occupied is the slot widened by the buffer snapshot. Two active bookings of
// a host may never have overlapping occupied ranges.
func (b *Booking) Occupied() timerange.Range {
	return b.Slot().Expand(b.spec.BufferBefore, b.spec.BufferAfter)
}

func (b *Booking) ConflictsWith(o *Booking) bool {
	return b.hostID == o.hostID && b.IsActive() && o.IsActive() && b.Occupied().Overlaps(o.Occupied())
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) HostID() uuid.UUID           { return b.hostID }
func (b *Booking) EventTypeID() uuid.UUID      { return b.eventTypeID }
func (b *Booking) SlotStart() time.Time        { return b.slotStart }
func (b *Booking) SlotEnd() time.Time          { return b.slotStart.Add(b.spec.Duration) }
func (b *Booking) Spec() Spec                  { return b.spec }
func (b *Booking) Duration() time.Duration     { return b.spec.Duration }
func (b *Booking) BufferBefore() time.Duration { return b.spec.BufferBefore }
func (b *Booking) BufferAfter() time.Duration  { return b.spec.BufferAfter }
func (b *Booking) Attendee() Attendee          { return b.attendee }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) CancelReason() string        { return b.cancelReason }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
func (b *Booking) CancelledAt() *time.Time     { return b.cancelledAt }
func (b *Booking) Version() int                { return b.version }

// Clone returns an independent copy, used by stores that hand out snapshots.
func (b *Booking) Clone() *Booking {
	c := *b
	if b.cancelledAt != nil {
		t := *b.cancelledAt
		c.cancelledAt = &t
	}
	return &c
}
