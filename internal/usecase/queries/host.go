package queries

import (
	"context"

	"slotbook/internal/domain/availability"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidDateRange = errs.Validation(errs.New("from must not be after to"))

// HostQueries serves the host's own settings pages.
//
//go:generate mockgen -source=host.go -destination=../../../tests/mock/queries/host_mock.go -package=queriesmock
type HostQueries interface {
	Profile(ctx context.Context, hostID uuid.UUID) (*HostView, error)
	WeeklyRules(ctx context.Context, hostID uuid.UUID) ([]WeeklyRuleView, error)
	Overrides(ctx context.Context, hostID uuid.UUID, from, to availability.Date) ([]OverrideView, error)
	EventTypes(ctx context.Context, hostID uuid.UUID) ([]*EventTypeView, error)
}

type hostQueriesImpl struct {
	hosts        shared.HostStore
	availability shared.AvailabilityStore
	eventTypes   shared.EventTypeStore
}

func NewHostQueries(hosts shared.HostStore, availabilityStore shared.AvailabilityStore, eventTypes shared.EventTypeStore) HostQueries {
	return &hostQueriesImpl{hosts: hosts, availability: availabilityStore, eventTypes: eventTypes}
}

func (q *hostQueriesImpl) Profile(ctx context.Context, hostID uuid.UUID) (*HostView, error) {
	h, err := q.hosts.Get(ctx, hostID)
	if err != nil {
		return nil, err
	}
	return NewHostView(h)
}

// WeeklyRules always returns seven days; an unconfigured week is all unavailable.
func (q *hostQueriesImpl) WeeklyRules(ctx context.Context, hostID uuid.UUID) ([]WeeklyRuleView, error) {
	rules, err := q.availability.WeeklyRules(ctx, hostID)
	if err != nil {
		return nil, err
	}
	week, err := availability.NewWeek(rules)
	if err != nil {
		return nil, err
	}
	return NewWeeklyRuleViews(week), nil
}

func (q *hostQueriesImpl) Overrides(ctx context.Context, hostID uuid.UUID, from, to availability.Date) ([]OverrideView, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	overrides, err := q.availability.Overrides(ctx, hostID, from, to)
	if err != nil {
		return nil, err
	}
	return NewOverrideViews(overrides), nil
}

func (q *hostQueriesImpl) EventTypes(ctx context.Context, hostID uuid.UUID) ([]*EventTypeView, error) {
	items, err := q.eventTypes.ListByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}
	out := make([]*EventTypeView, 0, len(items))
	for _, et := range items {
		v, err := NewEventTypeView(et)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
