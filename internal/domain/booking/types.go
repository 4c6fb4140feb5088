package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

var (
	ErrInvalidAttendeeName  = errors.New("attendee name is required")
	ErrInvalidAttendeeEmail = errors.New("invalid attendee email")
	ErrNotesTooLong         = errors.New("notes must be at most 2000 characters")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const maxNotesLen = 2000

type Attendee struct {
	name  string
	email string
	notes string
}

func NewAttendee(name, email, notes string) (Attendee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Attendee{}, ErrInvalidAttendeeName
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Attendee{}, ErrInvalidAttendeeEmail
	}
	notes = strings.TrimSpace(notes)
	if len([]rune(notes)) > maxNotesLen {
		return Attendee{}, ErrNotesTooLong
	}
	return Attendee{name: name, email: email, notes: notes}, nil
}

func (a Attendee) Name() string  { return a.name }
func (a Attendee) Email() string { return a.email }
func (a Attendee) Notes() string { return a.notes }

// Spec is the snapshot of event type timing taken at booking time.
type Spec struct {
	Duration     time.Duration
	BufferBefore time.Duration
	BufferAfter  time.Duration
}
