package queries

import (
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/eventtype"
	"slotbook/internal/domain/host"
	"slotbook/internal/domain/slot"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// SlotView is a bookable slot in UTC
type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// HostView represents a host profile
type HostView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EventTypeView struct {
	ID                   uuid.UUID `json:"id"`
	HostID               uuid.UUID `json:"host_id"`
	Title                string    `json:"title"`
	Slug                 string    `json:"slug"`
	Description          string    `json:"description"`
	DurationMinutes      int       `json:"duration_minutes" copier:"-"`
	BufferBeforeMinutes  int       `json:"buffer_before_minutes" copier:"-"`
	BufferAfterMinutes   int       `json:"buffer_after_minutes" copier:"-"`
	SlotStepMinutes      int       `json:"slot_step_minutes" copier:"-"`
	MinimumNoticeMinutes int       `json:"minimum_notice_minutes" copier:"-"`
	Active               bool      `json:"active"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// PublicHostView is what a booker sees of a host; the email stays private.
type PublicHostView struct {
	ID         uuid.UUID             `json:"id"`
	Username   string                `json:"username"`
	Name       string                `json:"name"`
	Timezone   string                `json:"timezone"`
	EventTypes []PublicEventTypeView `json:"event_types" copier:"-"`
}

type PublicEventTypeView struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
}

type PublicEventTypePageView struct {
	Host      PublicHostView      `json:"host"`
	EventType PublicEventTypeView `json:"event_type"`
}

type AttendeeView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Notes string `json:"notes,omitempty"`
}

type BookingView struct {
	ID                  uuid.UUID    `json:"id"`
	HostID              uuid.UUID    `json:"host_id"`
	EventTypeID         uuid.UUID    `json:"event_type_id"`
	SlotStart           time.Time    `json:"slot_start"`
	SlotEnd             time.Time    `json:"slot_end"`
	BufferBeforeMinutes int          `json:"buffer_before_minutes" copier:"-"`
	BufferAfterMinutes  int          `json:"buffer_after_minutes" copier:"-"`
	Attendee            AttendeeView `json:"attendee" copier:"-"`
	Status              string       `json:"status" copier:"-"`
	CancelReason        string       `json:"cancel_reason,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	CancelledAt         *time.Time   `json:"cancelled_at,omitempty"`
	Version             int          `json:"version"`
}

type IntervalView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type WeeklyRuleView struct {
	DayOfWeek string         `json:"day_of_week"`
	Intervals []IntervalView `json:"intervals"`
}

type OverrideView struct {
	Date      string         `json:"date"`
	Status    string         `json:"status"`
	Intervals []IntervalView `json:"intervals"`
}

func minutes(d time.Duration) int { return int(d / time.Minute) }

// copier reads the exported getters of the domain types into same-named fields.

func NewHostView(h *host.Host) (*HostView, error) {
	var v HostView
	if err := copier.Copy(&v, h); err != nil {
		return nil, errs.Wrap(err, "map host view")
	}
	return &v, nil
}

func NewEventTypeView(et *eventtype.EventType) (*EventTypeView, error) {
	var v EventTypeView
	if err := copier.Copy(&v, et); err != nil {
		return nil, errs.Wrap(err, "map event type view")
	}
	v.DurationMinutes = minutes(et.Duration())
	v.BufferBeforeMinutes = minutes(et.BufferBefore())
	v.BufferAfterMinutes = minutes(et.BufferAfter())
	v.SlotStepMinutes = minutes(et.SlotStep())
	v.MinimumNoticeMinutes = minutes(et.MinimumNotice())
	return &v, nil
}

func NewBookingView(b *booking.Booking) (*BookingView, error) {
	var v BookingView
	if err := copier.Copy(&v, b); err != nil {
		return nil, errs.Wrap(err, "map booking view")
	}
	v.BufferBeforeMinutes = minutes(b.BufferBefore())
	v.BufferAfterMinutes = minutes(b.BufferAfter())
	v.Status = b.Status().String()
	a := b.Attendee()
	v.Attendee = AttendeeView{Name: a.Name(), Email: a.Email(), Notes: a.Notes()}
	return &v, nil
}

func NewBookingViews(bs []*booking.Booking) ([]*BookingView, error) {
	out := make([]*BookingView, 0, len(bs))
	for _, b := range bs {
		v, err := NewBookingView(b)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func NewSlotViews(slots []slot.Slot) []SlotView {
	out := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotView{Start: s.Start.UTC(), End: s.End.UTC()})
	}
	return out
}

func newIntervalViews(ivs []availability.LocalInterval) []IntervalView {
	out := make([]IntervalView, 0, len(ivs))
	for _, iv := range ivs {
		out = append(out, IntervalView{Start: iv.Start.String(), End: iv.End.String()})
	}
	return out
}

func NewWeeklyRuleViews(week []availability.WeeklyRule) []WeeklyRuleView {
	out := make([]WeeklyRuleView, 0, len(week))
	for _, r := range week {
		out = append(out, WeeklyRuleView{
			DayOfWeek: r.Day().String(),
			Intervals: newIntervalViews(r.Intervals()),
		})
	}
	return out
}

func NewOverrideViews(overrides []availability.DateOverride) []OverrideView {
	out := make([]OverrideView, 0, len(overrides))
	for _, o := range overrides {
		out = append(out, OverrideView{
			Date:      o.Date().String(),
			Status:    string(o.Status()),
			Intervals: newIntervalViews(o.Intervals()),
		})
	}
	return out
}
