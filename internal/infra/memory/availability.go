package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"slotbook/internal/domain/availability"
	"slotbook/internal/infra"

	"github.com/google/uuid"
)

type AvailabilityStore struct {
	mu        sync.RWMutex
	weekly    map[uuid.UUID][]availability.WeeklyRule
	overrides map[uuid.UUID]map[availability.Date]availability.DateOverride
	logger    *slog.Logger
}

func NewAvailabilityStore(logger *slog.Logger) *AvailabilityStore {
	return &AvailabilityStore{
		weekly:    make(map[uuid.UUID][]availability.WeeklyRule),
		overrides: make(map[uuid.UUID]map[availability.Date]availability.DateOverride),
		logger:    logger,
	}
}

func (s *AvailabilityStore) ReplaceWeeklyRules(_ context.Context, hostID uuid.UUID, week []availability.WeeklyRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weekly[hostID] = slices.Clone(week)
	return nil
}

func (s *AvailabilityStore) WeeklyRules(_ context.Context, hostID uuid.UUID) ([]availability.WeeklyRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.weekly[hostID]), nil
}

func (s *AvailabilityStore) PutOverrides(_ context.Context, hostID uuid.UUID, overrides []availability.DateOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byDate, ok := s.overrides[hostID]
	if !ok {
		byDate = make(map[availability.Date]availability.DateOverride)
		s.overrides[hostID] = byDate
	}
	for _, o := range overrides {
		byDate[o.Date()] = o
	}
	return nil
}

func (s *AvailabilityStore) DeleteOverride(_ context.Context, hostID uuid.UUID, date availability.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.overrides[hostID][date]; !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "override not found", nil)
	}
	delete(s.overrides[hostID], date)
	return nil
}

func (s *AvailabilityStore) Overrides(_ context.Context, hostID uuid.UUID, from, to availability.Date) ([]availability.DateOverride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []availability.DateOverride
	for d, o := range s.overrides[hostID] {
		if !d.Before(from) && !d.After(to) {
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(a, b availability.DateOverride) int { return a.Date().Compare(b.Date()) })
	return out, nil
}

func (s *AvailabilityStore) HasRules(_ context.Context, hostID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.weekly[hostID]) > 0 || len(s.overrides[hostID]) > 0, nil
}
