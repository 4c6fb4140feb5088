package pgq

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Host struct {
	ID        uuid.UUID
	Username  string
	Name      string
	Email     string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventType struct {
	ID                   uuid.UUID
	HostID               uuid.UUID
	Title                string
	Slug                 string
	Description          string
	DurationMinutes      int32
	BufferBeforeMinutes  int32
	BufferAfterMinutes   int32
	SlotStepMinutes      int32
	MinimumNoticeMinutes int32
	Active               bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type WeeklyRule struct {
	DayOfWeek   int16
	StartMinute int16
	EndMinute   int16
}

type DateOverride struct {
	OverrideDate pgtype.Date
	Status       string
	StartMinutes []int16
	EndMinutes   []int16
}

type BusyBlock struct {
	Start time.Time
	End   time.Time
}

type Booking struct {
	ID                  uuid.UUID
	HostID              uuid.UUID
	EventTypeID         uuid.UUID
	SlotStart           time.Time
	DurationMinutes     int32
	BufferBeforeMinutes int32
	BufferAfterMinutes  int32
	AttendeeName        string
	AttendeeEmail       string
	AttendeeNotes       string
	Status              string
	CancelReason        string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	CancelledAt         pgtype.Timestamptz
	Version             int32
}
