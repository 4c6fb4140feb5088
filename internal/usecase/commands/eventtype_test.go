//go:build unit

package commands_test

import (
	"context"
	"math"
	"testing"

	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newEventTypeCommands(t *testing.T) (commands.EventTypeCommands, *builder.Fixture) {
	f := builder.NewScheduleBuilder().Build(t)
	return commands.NewEventTypeCommands(f.Hosts, f.EventTypes, f.Clock, f.Logger), f
}

func TestCreateEventType(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		in    commands.EventTypeInput
		check func(t *testing.T, err error)
	}{
		{
			name: "valid",
			in:   commands.EventTypeInput{Title: "Deep dive", Slug: "deep-dive", DurationMinutes: 60, BufferAfterMinutes: 10},
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:  "zero duration",
			in:    commands.EventTypeInput{Title: "Broken", Slug: "broken"},
			check: func(t *testing.T, err error) { assert.True(t, errs.Is(err, errs.ErrValidation)) },
		},
		{
			name:  "bad slug",
			in:    commands.EventTypeInput{Title: "Broken", Slug: "Not A Slug", DurationMinutes: 30},
			check: func(t *testing.T, err error) { assert.True(t, errs.Is(err, errs.ErrValidation)) },
		},
		{
			name:  "duration that would overflow",
			in:    commands.EventTypeInput{Title: "Huge", Slug: "huge", DurationMinutes: math.MaxInt},
			check: func(t *testing.T, err error) { assert.True(t, errs.Is(err, errs.ErrValidation)) },
		},
		{
			name:  "buffer that would overflow",
			in:    commands.EventTypeInput{Title: "Huge", Slug: "huge", DurationMinutes: 30, BufferBeforeMinutes: math.MaxInt},
			check: func(t *testing.T, err error) { assert.True(t, errs.Is(err, errs.ErrValidation)) },
		},
		{
			name:  "notice over a year",
			in:    commands.EventTypeInput{Title: "Late", Slug: "late", DurationMinutes: 30, MinimumNoticeMinutes: 366 * 24 * 60},
			check: func(t *testing.T, err error) { assert.True(t, errs.Is(err, errs.ErrValidation)) },
		},
		{
			name:  "slug already used by this host",
			in:    commands.EventTypeInput{Title: "Again", Slug: "intro", DurationMinutes: 15},
			check: func(t *testing.T, err error) { assert.True(t, errs.Is(err, errs.ErrSlugTaken)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, f := newEventTypeCommands(t)

			_, err := cmds.Create(ctx, f.Host.ID(), tt.in)

			tt.check(t, err)
		})
	}

	t.Run("active by default", func(t *testing.T) {
		cmds, f := newEventTypeCommands(t)

		view, err := cmds.Create(ctx, f.Host.ID(), commands.EventTypeInput{Title: "Chat", Slug: "chat", DurationMinutes: 20})

		require.NoError(t, err)
		assert.True(t, view.Active)
		assert.Equal(t, 20, view.DurationMinutes)
	})

	t.Run("unknown host", func(t *testing.T) {
		cmds, _ := newEventTypeCommands(t)

		_, err := cmds.Create(ctx, uuid.New(), commands.EventTypeInput{Title: "Chat", Slug: "chat", DurationMinutes: 20})

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestUpdateEventType(t *testing.T) {
	ctx := context.Background()

	t.Run("patches only the given fields", func(t *testing.T) {
		cmds, f := newEventTypeCommands(t)

		view, err := cmds.Update(ctx, f.Host.ID(), f.EventType.ID(), commands.EventTypePatch{
			DurationMinutes: ptr(45),
			Active:          ptr(false),
		})

		require.NoError(t, err)
		assert.Equal(t, 45, view.DurationMinutes)
		assert.False(t, view.Active)
		assert.Equal(t, "intro", view.Slug)
		assert.Equal(t, "Intro call", view.Title)
	})

	t.Run("empty patch", func(t *testing.T) {
		cmds, f := newEventTypeCommands(t)

		_, err := cmds.Update(ctx, f.Host.ID(), f.EventType.ID(), commands.EventTypePatch{})

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("other host sees not found", func(t *testing.T) {
		cmds, f := newEventTypeCommands(t)

		_, err := cmds.Update(ctx, uuid.New(), f.EventType.ID(), commands.EventTypePatch{Title: ptr("Mine now")})

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestDeleteEventType(t *testing.T) {
	ctx := context.Background()
	cmds, f := newEventTypeCommands(t)

	assert.True(t, errs.Is(cmds.Delete(ctx, uuid.New(), f.EventType.ID()), errs.ErrNotFound))
	require.NoError(t, cmds.Delete(ctx, f.Host.ID(), f.EventType.ID()))

	_, err := f.EventTypes.Get(ctx, f.EventType.ID())
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}
