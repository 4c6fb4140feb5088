//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/domain/eventtype"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicQueries(t *testing.T) {
	ctx := context.Background()
	f := builder.NewScheduleBuilder().Build(t)
	q := queries.NewPublicQueries(f.Hosts, f.EventTypes)

	hidden, err := eventtype.NewEventType(f.Host.ID(), eventtype.Params{
		Title:    "Retired",
		Slug:     "retired",
		Duration: 30 * time.Minute,
		Active:   false,
	}, f.Clock.Now())
	require.NoError(t, err)
	require.NoError(t, f.EventTypes.Create(ctx, hidden))

	t.Run("host page lists only active event types", func(t *testing.T) {
		view, err := q.HostPage(ctx, "ada")

		require.NoError(t, err)
		assert.Equal(t, f.Host.ID(), view.ID)
		assert.Equal(t, "UTC", view.Timezone)
		want := []queries.PublicEventTypeView{{
			ID:              f.EventType.ID(),
			Title:           f.EventType.Title(),
			Slug:            "intro",
			Description:     f.EventType.Description(),
			DurationMinutes: 30,
		}}
		if diff := cmp.Diff(want, view.EventTypes); diff != "" {
			t.Errorf("event types mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := q.HostPage(ctx, "nobody")
		assert.True(t, errs.Is(err, errs.ErrNotFound))

		_, err = q.EventTypePage(ctx, "nobody", "intro")
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("event type page", func(t *testing.T) {
		page, err := q.EventTypePage(ctx, "ada", "intro")

		require.NoError(t, err)
		assert.Equal(t, "ada", page.Host.Username)
		assert.Empty(t, page.Host.EventTypes)
		assert.Equal(t, f.EventType.ID(), page.EventType.ID)
	})

	t.Run("inactive and missing slugs are not found", func(t *testing.T) {
		for _, slug := range []string{"retired", "missing"} {
			_, err := q.EventTypePage(ctx, "ada", slug)
			assert.True(t, errs.Is(err, errs.ErrNotFound), slug)
		}
	})
}
