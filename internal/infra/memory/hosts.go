// Package memory holds process-local stores. They back STORE_DRIVER=memory
// and the unit tests; all of them are safe for concurrent use.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"slotbook/internal/domain/host"
	"slotbook/internal/infra"

	"github.com/google/uuid"
)

type HostStore struct {
	mu         sync.RWMutex
	hosts      map[uuid.UUID]*host.Host
	byUsername map[string]uuid.UUID
	logger     *slog.Logger
}

func NewHostStore(logger *slog.Logger) *HostStore {
	return &HostStore{
		hosts:      make(map[uuid.UUID]*host.Host),
		byUsername: make(map[string]uuid.UUID),
		logger:     logger,
	}
}

func (s *HostStore) Create(_ context.Context, h *host.Host) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byUsername[h.Username()]; taken {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "username already exists", nil)
	}
	cp := *h
	s.hosts[h.ID()] = &cp
	s.byUsername[h.Username()] = h.ID()
	return nil
}

func (s *HostStore) Get(_ context.Context, id uuid.UUID) (*host.Host, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.hosts[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "host not found", nil)
	}
	cp := *h
	return &cp, nil
}

func (s *HostStore) GetByUsername(ctx context.Context, username string) (*host.Host, error) {
	s.mu.RLock()
	id, ok := s.byUsername[username]
	s.mu.RUnlock()
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "host not found", nil)
	}
	return s.Get(ctx, id)
}

func (s *HostStore) Update(_ context.Context, h *host.Host) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hosts[h.ID()]; !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "host not found", nil)
	}
	cp := *h
	s.hosts[h.ID()] = &cp
	return nil
}
