package memory

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"sync"

	"slotbook/internal/domain/eventtype"
	"slotbook/internal/infra"

	"github.com/google/uuid"
)

type EventTypeStore struct {
	mu     sync.RWMutex
	items  map[uuid.UUID]*eventtype.EventType
	logger *slog.Logger
}

func NewEventTypeStore(logger *slog.Logger) *EventTypeStore {
	return &EventTypeStore{
		items:  make(map[uuid.UUID]*eventtype.EventType),
		logger: logger,
	}
}

func (s *EventTypeStore) slugTaken(et *eventtype.EventType) bool {
	for _, other := range s.items {
		if other.ID() != et.ID() && other.HostID() == et.HostID() && other.Slug() == et.Slug() {
			return true
		}
	}
	return false
}

func (s *EventTypeStore) Create(_ context.Context, et *eventtype.EventType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slugTaken(et) {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "event type slug already exists", nil)
	}
	cp := *et
	s.items[et.ID()] = &cp
	return nil
}

func (s *EventTypeStore) Get(_ context.Context, id uuid.UUID) (*eventtype.EventType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	et, ok := s.items[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "event type not found", nil)
	}
	cp := *et
	return &cp, nil
}

func (s *EventTypeStore) GetBySlug(_ context.Context, hostID uuid.UUID, slug string) (*eventtype.EventType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, et := range s.items {
		if et.HostID() == hostID && et.Slug() == slug {
			cp := *et
			return &cp, nil
		}
	}
	return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "event type not found", nil)
}

func (s *EventTypeStore) ListByHost(_ context.Context, hostID uuid.UUID) ([]*eventtype.EventType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*eventtype.EventType
	for _, et := range s.items {
		if et.HostID() == hostID {
			cp := *et
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *eventtype.EventType) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		ai, bi := a.ID(), b.ID()
		return bytes.Compare(ai[:], bi[:])
	})
	return out, nil
}

func (s *EventTypeStore) Update(_ context.Context, et *eventtype.EventType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[et.ID()]; !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "event type not found", nil)
	}
	if s.slugTaken(et) {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "event type slug already exists", nil)
	}
	cp := *et
	s.items[et.ID()] = &cp
	return nil
}

func (s *EventTypeStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "event type not found", nil)
	}
	delete(s.items, id)
	return nil
}
