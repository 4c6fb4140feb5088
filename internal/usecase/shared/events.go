package shared

import (
	"time"

	"slotbook/internal/domain/booking"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventBookingConfirmed EventKind = "booking.confirmed"
	EventBookingCancelled EventKind = "booking.cancelled"
)

// BookingEvent is handed to downstream collaborators (notifications, video
// links) after a booking commits.
type BookingEvent struct {
	ID            uuid.UUID `json:"id"`
	Kind          EventKind `json:"kind"`
	BookingID     uuid.UUID `json:"bookingId"`
	HostID        uuid.UUID `json:"hostId"`
	EventTypeID   uuid.UUID `json:"eventTypeId"`
	SlotStart     time.Time `json:"slotStart"`
	SlotEnd       time.Time `json:"slotEnd"`
	AttendeeName  string    `json:"attendeeName"`
	AttendeeEmail string    `json:"attendeeEmail"`
	Notes         string    `json:"notes,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func NewBookingEvent(kind EventKind, b *booking.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		ID:            uuid.New(),
		Kind:          kind,
		BookingID:     b.ID(),
		HostID:        b.HostID(),
		EventTypeID:   b.EventTypeID(),
		SlotStart:     b.SlotStart(),
		SlotEnd:       b.SlotEnd(),
		AttendeeName:  b.Attendee().Name(),
		AttendeeEmail: b.Attendee().Email(),
		Notes:         b.Attendee().Notes(),
		Reason:        b.CancelReason(),
		OccurredAt:    at,
	}
}
