//go:build unit

package memory

import (
	"context"

	"github.com/google/uuid"
)

// HoldHost takes the reservation lock of a host until the returned func is called.
func (l *Ledger) HoldHost(hostID uuid.UUID) func() {
	release, err := l.acquire(context.Background(), hostID)
	if err != nil {
		panic(err)
	}
	return release
}
