//go:build unit

package memory_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/domain/timerange"
	"slotbook/internal/infra/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusyTimeStore(t *testing.T) {
	ctx := context.Background()
	at := func(hour int) time.Time { return now.Truncate(24 * time.Hour).Add(time.Duration(hour) * time.Hour) }
	day := timerange.Must(at(0), at(24))

	t.Run("resync of one window keeps touching blocks of another", func(t *testing.T) {
		store := memory.NewBusyTimeStore()
		hostID := uuid.New()
		require.NoError(t, store.ReplaceBusy(ctx, hostID, timerange.Must(at(6), at(10)),
			[]timerange.Range{timerange.Must(at(8), at(10))}))
		require.NoError(t, store.ReplaceBusy(ctx, hostID, timerange.Must(at(10), at(12)),
			[]timerange.Range{timerange.Must(at(10), at(11))}))

		merged, err := store.Busy(ctx, hostID, day)
		require.NoError(t, err)
		assert.Equal(t, []timerange.Range{timerange.Must(at(8), at(11))}, merged)

		require.NoError(t, store.ReplaceBusy(ctx, hostID, timerange.Must(at(10), at(12)), nil))

		got, err := store.Busy(ctx, hostID, day)
		require.NoError(t, err)
		assert.Equal(t, []timerange.Range{timerange.Must(at(8), at(10))}, got)
	})

	t.Run("busy is scoped per host", func(t *testing.T) {
		store := memory.NewBusyTimeStore()
		hostID := uuid.New()
		require.NoError(t, store.ReplaceBusy(ctx, hostID, day, []timerange.Range{timerange.Must(at(9), at(10))}))

		got, err := store.Busy(ctx, uuid.New(), day)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
