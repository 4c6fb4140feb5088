package queries

import (
	"context"

	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidScope = errs.Validation(errs.New("scope must be upcoming or past"))

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock
type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForHost(ctx context.Context, hostID uuid.UUID, scope shared.BookingScope) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	ledger shared.ReservationLedger
	clock  clock.Clock
	limit  int
}

func NewBookingQueries(ledger shared.ReservationLedger, clk clock.Clock, cfg config.BookingConfig) BookingQueries {
	return &bookingQueriesImpl{ledger: ledger, clock: clk, limit: cfg.HistoryLimit}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.ledger.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewBookingView(b)
}

func (q *bookingQueriesImpl) ListForHost(ctx context.Context, hostID uuid.UUID, scope shared.BookingScope) ([]*BookingView, error) {
	if scope == "" {
		scope = shared.ScopeUpcoming
	}
	if !scope.IsValid() {
		return nil, ErrInvalidScope
	}
	bs, err := q.ledger.ListByHost(ctx, hostID, scope, q.clock.Now(), q.limit)
	if err != nil {
		return nil, err
	}
	return NewBookingViews(bs)
}
