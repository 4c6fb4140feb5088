package host

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidUsername = errors.New("username must be 3-32 lowercase letters, digits, '-' or '_'")
	ErrInvalidName     = errors.New("name is required")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidTimezone = errors.New("unknown IANA timezone")
)

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9_-]{3,32}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Host owns availability rules and event types. Weekly rules are interpreted
// in the host's timezone.
type Host struct {
	id        uuid.UUID
	username  string
	name      string
	email     string
	location  *time.Location
	createdAt time.Time
	updatedAt time.Time
}

func NewHost(username, name, email, timezone string, now time.Time) (*Host, error) {
	h := &Host{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
	username = strings.TrimSpace(username)
	if !usernameRegex.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	h.username = username
	if err := h.UpdateProfile(name, email, timezone, now); err != nil {
		return nil, err
	}
	return h, nil
}

func Reconstruct(id uuid.UUID, username, name, email, timezone string, createdAt, updatedAt time.Time) (*Host, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Host{
		id:        id,
		username:  username,
		name:      name,
		email:     email,
		location:  loc,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (h *Host) UpdateProfile(name, email, timezone string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	loc, err := LoadLocation(timezone)
	if err != nil {
		return err
	}
	h.name = name
	h.email = email
	h.location = loc
	h.updatedAt = now
	return nil
}

func LoadLocation(timezone string) (*time.Location, error) {
	if strings.TrimSpace(timezone) == "" {
		return nil, ErrInvalidTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

func (h *Host) ID() uuid.UUID            { return h.id }
func (h *Host) Username() string         { return h.username }
func (h *Host) Name() string             { return h.name }
func (h *Host) Email() string            { return h.email }
func (h *Host) Location() *time.Location { return h.location }
func (h *Host) Timezone() string         { return h.location.String() }
func (h *Host) CreatedAt() time.Time     { return h.createdAt }
func (h *Host) UpdatedAt() time.Time     { return h.updatedAt }
