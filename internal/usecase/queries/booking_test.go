//go:build unit

package queries_test

import (
	"context"
	"testing"

	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"
	"slotbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()
	f := builder.NewScheduleBuilder().Build(t)
	early := reserve(t, f, builder.At(9, 0))
	late := reserve(t, f, builder.At(15, 0))
	f.Clock.Set(builder.At(12, 0))
	q := queries.NewBookingQueries(f.Ledger, f.Clock, builder.BookingConfig())

	t.Run("get by id", func(t *testing.T) {
		view, err := q.GetByID(ctx, early.ID())

		require.NoError(t, err)
		assert.Equal(t, early.ID(), view.ID)
		assert.Equal(t, "confirmed", view.Status)
		assert.Equal(t, "Grace", view.Attendee.Name)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New())

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("upcoming by default", func(t *testing.T) {
		views, err := q.ListForHost(ctx, f.Host.ID(), "")

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, late.ID(), views[0].ID)
	})

	t.Run("past", func(t *testing.T) {
		views, err := q.ListForHost(ctx, f.Host.ID(), shared.ScopePast)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, early.ID(), views[0].ID)
		assert.Equal(t, builder.At(9, 30), views[0].SlotEnd)
	})

	t.Run("invalid scope", func(t *testing.T) {
		_, err := q.ListForHost(ctx, f.Host.ID(), shared.BookingScope("someday"))

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("cancelled bookings stay listed", func(t *testing.T) {
		_, err := f.Ledger.Cancel(ctx, late.ID(), "moved", f.Clock.Now())
		require.NoError(t, err)

		views, err := q.ListForHost(ctx, f.Host.ID(), shared.ScopeUpcoming)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "cancelled", views[0].Status)
		assert.Equal(t, "moved", views[0].CancelReason)
		require.NotNil(t, views[0].CancelledAt)
		assert.True(t, views[0].CancelledAt.Equal(builder.At(12, 0)))
	})
}
