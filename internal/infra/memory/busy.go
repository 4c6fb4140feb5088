package memory

import (
	"context"
	"sync"

	"slotbook/internal/domain/timerange"

	"github.com/google/uuid"
)

type BusyTimeStore struct {
	mu     sync.RWMutex
	blocks map[uuid.UUID][]timerange.Range
}

func NewBusyTimeStore() *BusyTimeStore {
	return &BusyTimeStore{blocks: make(map[uuid.UUID][]timerange.Range)}
}

// ReplaceBusy drops every block overlapping window and stores blocks in its
// place. Blocks from different syncs are kept apart so a later sync of one
// window never removes time outside it.
func (s *BusyTimeStore) ReplaceBusy(_ context.Context, hostID uuid.UUID, window timerange.Range, blocks []timerange.Range) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]timerange.Range, 0, len(s.blocks[hostID])+len(blocks))
	for _, b := range s.blocks[hostID] {
		if !b.Overlaps(window) {
			kept = append(kept, b)
		}
	}
	kept = append(kept, timerange.Normalize(blocks)...)
	s.blocks[hostID] = kept
	return nil
}

func (s *BusyTimeStore) Busy(_ context.Context, hostID uuid.UUID, window timerange.Range) ([]timerange.Range, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []timerange.Range
	for _, b := range s.blocks[hostID] {
		if b.Overlaps(window) {
			out = append(out, b)
		}
	}
	return timerange.Normalize(out), nil
}
