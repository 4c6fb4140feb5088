package request

import (
	"strings"
	"time"

	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type AttendeeRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email"`
	Notes string `json:"notes" binding:"max=2000"`
}

type ReserveSlotRequest struct {
	SlotStart time.Time       `json:"slotStart" binding:"required"`
	Attendee  AttendeeRequest `json:"attendee" binding:"required"`
}

func (r ReserveSlotRequest) ToInput(hostID, eventTypeID uuid.UUID) commands.ReserveRequest {
	return commands.ReserveRequest{
		HostID:        hostID,
		EventTypeID:   eventTypeID,
		SlotStart:     r.SlotStart,
		AttendeeName:  strings.TrimSpace(r.Attendee.Name),
		AttendeeEmail: strings.TrimSpace(r.Attendee.Email),
		Notes:         strings.TrimSpace(r.Attendee.Notes),
	}
}

// CancelBookingRequest is optional; an empty body cancels without a reason.
type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}
