package memory

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/timerange"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Ledger serializes reservations per host with a weighted semaphore, so
// waiting honours the caller's context deadline. Readers only take mu and
// never wait behind a reservation in progress.
type Ledger struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*booking.Booking
	byHost   map[uuid.UUID][]uuid.UUID
	locks    map[uuid.UUID]*semaphore.Weighted
	clock    clock.Clock
	logger   *slog.Logger
}

func NewLedger(clk clock.Clock, logger *slog.Logger) *Ledger {
	return &Ledger{
		bookings: make(map[uuid.UUID]*booking.Booking),
		byHost:   make(map[uuid.UUID][]uuid.UUID),
		locks:    make(map[uuid.UUID]*semaphore.Weighted),
		clock:    clk,
		logger:   logger,
	}
}

func (l *Ledger) hostLock(hostID uuid.UUID) *semaphore.Weighted {
	l.mu.Lock()
	defer l.mu.Unlock()
	sem, ok := l.locks[hostID]
	if !ok {
		sem = semaphore.NewWeighted(1)
		l.locks[hostID] = sem
	}
	return sem
}

func (l *Ledger) acquire(ctx context.Context, hostID uuid.UUID) (func(), error) {
	sem := l.hostLock(hostID)
	if err := sem.Acquire(ctx, 1); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, infra.WrapRepoErr(l.logger, infra.KindTimeout, "host lock wait exceeded", err)
		}
		return nil, err
	}
	return func() { sem.Release(1) }, nil
}

func (l *Ledger) TryReserve(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	release, err := l.acquire(ctx, b.HostID())
	if err != nil {
		return nil, err
	}
	defer release()

	l.mu.RLock()
	for _, id := range l.byHost[b.HostID()] {
		if existing := l.bookings[id]; existing.ConflictsWith(b) {
			l.mu.RUnlock()
			return nil, infra.WrapRepoErr(l.logger, infra.KindConflict, "occupied range overlaps an active booking", nil)
		}
	}
	l.mu.RUnlock()

	stored := b.Clone()
	if err := stored.Confirm(l.clock.Now()); err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.bookings[stored.ID()] = stored
	l.byHost[stored.HostID()] = append(l.byHost[stored.HostID()], stored.ID())
	l.mu.Unlock()

	return stored.Clone(), nil
}

func (l *Ledger) Get(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr(l.logger, infra.KindNotFound, "booking not found", nil)
	}
	return b.Clone(), nil
}

func (l *Ledger) Cancel(_ context.Context, id uuid.UUID, reason string, at time.Time) (*booking.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr(l.logger, infra.KindNotFound, "booking not found", nil)
	}
	updated := b.Clone()
	if err := updated.Cancel(reason, at); err != nil {
		return nil, err
	}
	l.bookings[id] = updated
	return updated.Clone(), nil
}

func (l *Ledger) ListActive(_ context.Context, hostID uuid.UUID, window timerange.Range) ([]*booking.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*booking.Booking
	for _, id := range l.byHost[hostID] {
		b := l.bookings[id]
		if b.IsActive() && b.Occupied().Overlaps(window) {
			out = append(out, b.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *booking.Booking) int { return a.SlotStart().Compare(b.SlotStart()) })
	return out, nil
}

func (l *Ledger) ListByHost(_ context.Context, hostID uuid.UUID, scope shared.BookingScope, now time.Time, limit int) ([]*booking.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*booking.Booking
	for _, id := range l.byHost[hostID] {
		b := l.bookings[id]
		upcoming := b.SlotEnd().After(now)
		if (scope == shared.ScopeUpcoming) == upcoming {
			out = append(out, b.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *booking.Booking) int {
		if scope == shared.ScopePast {
			return b.SlotStart().Compare(a.SlotStart())
		}
		return a.SlotStart().Compare(b.SlotStart())
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
