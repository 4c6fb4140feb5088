package shared

import (
	"context"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/eventtype"
	"slotbook/internal/domain/host"
	"slotbook/internal/domain/timerange"

	"github.com/google/uuid"
)

// Store ports. Implementations return infra.RepositoryError values, which
// satisfy errs.Is against the taxonomy sentinels.

type HostStore interface {
	Create(ctx context.Context, h *host.Host) error
	Get(ctx context.Context, id uuid.UUID) (*host.Host, error)
	GetByUsername(ctx context.Context, username string) (*host.Host, error)
	Update(ctx context.Context, h *host.Host) error
}

type AvailabilityStore interface {
	// ReplaceWeeklyRules stores a full week, replacing any previous one.
	ReplaceWeeklyRules(ctx context.Context, hostID uuid.UUID, week []availability.WeeklyRule) error
	WeeklyRules(ctx context.Context, hostID uuid.UUID) ([]availability.WeeklyRule, error)
	// PutOverrides upserts overrides keyed by (host, date) in one write.
	PutOverrides(ctx context.Context, hostID uuid.UUID, overrides []availability.DateOverride) error
	DeleteOverride(ctx context.Context, hostID uuid.UUID, date availability.Date) error
	Overrides(ctx context.Context, hostID uuid.UUID, from, to availability.Date) ([]availability.DateOverride, error)
	HasRules(ctx context.Context, hostID uuid.UUID) (bool, error)
}

type EventTypeStore interface {
	Create(ctx context.Context, et *eventtype.EventType) error
	Get(ctx context.Context, id uuid.UUID) (*eventtype.EventType, error)
	// GetBySlug finds an event type by its per-host slug.
	GetBySlug(ctx context.Context, hostID uuid.UUID, slug string) (*eventtype.EventType, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*eventtype.EventType, error)
	Update(ctx context.Context, et *eventtype.EventType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BusyTimeStore holds busy blocks pushed by external calendar sync.
type BusyTimeStore interface {
	ReplaceBusy(ctx context.Context, hostID uuid.UUID, window timerange.Range, blocks []timerange.Range) error
	Busy(ctx context.Context, hostID uuid.UUID, window timerange.Range) ([]timerange.Range, error)
}

type BookingScope string

const (
	ScopeUpcoming BookingScope = "upcoming"
	ScopePast     BookingScope = "past"
)

func (s BookingScope) IsValid() bool {
	return s == ScopeUpcoming || s == ScopePast
}

// ReservationLedger is the only component that serializes writers. At most one
// active booking of a host may occupy any instant.
type ReservationLedger interface {
	// TryReserve atomically checks for overlapping active bookings and stores b
	// as confirmed. Fails with a conflict or a timeout kind.
	TryReserve(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// Cancel fails with booking.ErrAlreadyCancelled when there is nothing to do.
	Cancel(ctx context.Context, id uuid.UUID, reason string, at time.Time) (*booking.Booking, error)
	// ListActive returns non-cancelled bookings whose occupied range overlaps window.
	ListActive(ctx context.Context, hostID uuid.UUID, window timerange.Range) ([]*booking.Booking, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, scope BookingScope, now time.Time, limit int) ([]*booking.Booking, error)
}

//go:generate mockgen -destination=../../../tests/mock/shared/publisher_mock.go -package=sharedmock slotbook/internal/usecase/shared EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, evt BookingEvent) error
}
