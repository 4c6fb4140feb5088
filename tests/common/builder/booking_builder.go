//go:build unit || e2e

package builder

import (
	"time"

	"slotbook/internal/domain/booking"
	reqdto "slotbook/internal/handler/dto/request"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	HostID        uuid.UUID
	EventTypeID   uuid.UUID
	SlotStart     time.Time
	Duration      time.Duration
	AttendeeName  string
	AttendeeEmail string
	Notes         string
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		HostID:        uuid.New(),
		EventTypeID:   uuid.New(),
		SlotStart:     At(10, 0),
		Duration:      30 * time.Minute,
		AttendeeName:  "Grace Hopper",
		AttendeeEmail: "grace@example.com",
		Notes:         "Let's talk compilers",
		CreatedAt:     time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildReserveRequestDTO() reqdto.ReserveSlotRequest {
	return reqdto.ReserveSlotRequest{
		SlotStart: b.SlotStart,
		Attendee: reqdto.AttendeeRequest{
			Name:  b.AttendeeName,
			Email: b.AttendeeEmail,
			Notes: b.Notes,
		},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          uuid.New(),
		HostID:      b.HostID,
		EventTypeID: b.EventTypeID,
		SlotStart:   b.SlotStart,
		SlotEnd:     b.SlotStart.Add(b.Duration),
		Attendee: queries.AttendeeView{
			Name:  b.AttendeeName,
			Email: b.AttendeeEmail,
			Notes: b.Notes,
		},
		Status:    booking.StatusConfirmed.String(),
		CreatedAt: b.CreatedAt,
		Version:   1,
	}
}
