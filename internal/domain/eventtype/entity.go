package eventtype

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTitle         = errors.New("title is required")
	ErrInvalidSlug          = errors.New("slug must be lowercase letters, digits and '-'")
	ErrInvalidDuration      = errors.New("duration must be whole minutes between 1 minute and 24 hours")
	ErrInvalidBuffer        = errors.New("buffers must be whole minutes between 0 and 24 hours")
	ErrInvalidSlotStep      = errors.New("slot step must be whole minutes between 0 and 24 hours")
	ErrInvalidMinimumNotice = errors.New("minimum notice must be whole minutes between 0 and 365 days")
	ErrDescriptionTooLong   = errors.New("description must be at most 1000 characters")
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const (
	MaxDescriptionLen = 1000
	MaxDuration       = 24 * time.Hour
	MaxMinimumNotice  = 365 * 24 * time.Hour
)

// wholeMinutes reports whether d is a minute multiple in [0, limit].
func wholeMinutes(d, limit time.Duration) bool {
	return d >= 0 && d <= limit && d%time.Minute == 0
}

// Params carries the host-editable attributes of an event type.
type Params struct {
	Title         string
	Slug          string
	Description   string
	Duration      time.Duration
	BufferBefore  time.Duration
	BufferAfter   time.Duration
	SlotStep      time.Duration
	MinimumNotice time.Duration
	Active        bool
}

func (p Params) validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrInvalidTitle
	}
	if !slugRegex.MatchString(p.Slug) {
		return ErrInvalidSlug
	}
	if len([]rune(p.Description)) > MaxDescriptionLen {
		return ErrDescriptionTooLong
	}
	if p.Duration == 0 || !wholeMinutes(p.Duration, MaxDuration) {
		return ErrInvalidDuration
	}
	if !wholeMinutes(p.BufferBefore, MaxDuration) || !wholeMinutes(p.BufferAfter, MaxDuration) {
		return ErrInvalidBuffer
	}
	if !wholeMinutes(p.SlotStep, MaxDuration) {
		return ErrInvalidSlotStep
	}
	if !wholeMinutes(p.MinimumNotice, MaxMinimumNotice) {
		return ErrInvalidMinimumNotice
	}
	return nil
}

// EventType is a bookable meeting kind owned by a host.
type EventType struct {
	id        uuid.UUID
	hostID    uuid.UUID
	params    Params
	createdAt time.Time
	updatedAt time.Time
}

func NewEventType(hostID uuid.UUID, p Params, now time.Time) (*EventType, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = strings.TrimSpace(p.Slug)
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &EventType{
		id:        uuid.New(),
		hostID:    hostID,
		params:    p,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id, hostID uuid.UUID, p Params, createdAt, updatedAt time.Time) *EventType {
	return &EventType{
		id:        id,
		hostID:    hostID,
		params:    p,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces all editable attributes. Existing bookings keep their own
// snapshot of duration and buffers.
func (e *EventType) Update(p Params, now time.Time) error {
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = strings.TrimSpace(p.Slug)
	if err := p.validate(); err != nil {
		return err
	}
	e.params = p
	e.updatedAt = now
	return nil
}

func (e *EventType) SetActive(active bool, now time.Time) {
	e.params.Active = active
	e.updatedAt = now
}

func (e *EventType) ID() uuid.UUID                { return e.id }
func (e *EventType) HostID() uuid.UUID            { return e.hostID }
func (e *EventType) Params() Params               { return e.params }
func (e *EventType) Title() string                { return e.params.Title }
func (e *EventType) Slug() string                 { return e.params.Slug }
func (e *EventType) Description() string          { return e.params.Description }
func (e *EventType) Duration() time.Duration      { return e.params.Duration }
func (e *EventType) BufferBefore() time.Duration  { return e.params.BufferBefore }
func (e *EventType) BufferAfter() time.Duration   { return e.params.BufferAfter }
func (e *EventType) SlotStep() time.Duration      { return e.params.SlotStep }
func (e *EventType) MinimumNotice() time.Duration { return e.params.MinimumNotice }
func (e *EventType) Active() bool                 { return e.params.Active }
func (e *EventType) CreatedAt() time.Time         { return e.createdAt }
func (e *EventType) UpdatedAt() time.Time         { return e.updatedAt }

// Step is the distance between consecutive slot starts; zero means back-to-back.
func (e *EventType) Step() time.Duration {
	if e.params.SlotStep > 0 {
		return e.params.SlotStep
	}
	return e.params.Duration
}

func (e *EventType) OwnedBy(hostID uuid.UUID) bool {
	return e.hostID == hostID
}
