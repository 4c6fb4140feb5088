package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AttendeeResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Notes string `json:"notes,omitempty"`
}

type BookingResponse struct {
	ID                  uuid.UUID        `json:"id"`
	HostID              uuid.UUID        `json:"hostId"`
	EventTypeID         uuid.UUID        `json:"eventTypeId"`
	SlotStart           time.Time        `json:"slotStart"`
	SlotEnd             time.Time        `json:"slotEnd"`
	BufferBeforeMinutes int              `json:"bufferBeforeMinutes"`
	BufferAfterMinutes  int              `json:"bufferAfterMinutes"`
	Attendee            AttendeeResponse `json:"attendee"`
	Status              string           `json:"status"`
	CancelReason        string           `json:"cancelReason,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
	CancelledAt         *time.Time       `json:"cancelledAt,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                  v.ID,
		HostID:              v.HostID,
		EventTypeID:         v.EventTypeID,
		SlotStart:           v.SlotStart.UTC(),
		SlotEnd:             v.SlotEnd.UTC(),
		BufferBeforeMinutes: v.BufferBeforeMinutes,
		BufferAfterMinutes:  v.BufferAfterMinutes,
		Attendee: AttendeeResponse{
			Name:  v.Attendee.Name,
			Email: v.Attendee.Email,
			Notes: v.Attendee.Notes,
		},
		Status:       v.Status,
		CancelReason: v.CancelReason,
		CreatedAt:    v.CreatedAt,
		CancelledAt:  v.CancelledAt,
	}
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}
