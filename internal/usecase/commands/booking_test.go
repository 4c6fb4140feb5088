//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/timerange"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/shared"
	"slotbook/tests/common/builder"
	sharedmock "slotbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type coordinatorSuite struct {
	f         *builder.Fixture
	publisher *sharedmock.MockEventPublisher
	cfg       config.BookingConfig
}

func newCoordinatorSuite(t *testing.T, b *builder.ScheduleBuilder) *coordinatorSuite {
	ctrl := gomock.NewController(t)
	return &coordinatorSuite{
		f:         b.Build(t),
		publisher: sharedmock.NewMockEventPublisher(ctrl),
		cfg:       builder.BookingConfig(),
	}
}

func (s *coordinatorSuite) coordinator(ledger shared.ReservationLedger) commands.BookingCommands {
	if ledger == nil {
		ledger = s.f.Ledger
	}
	return commands.NewBookingCoordinator(s.f.SlotGenerator(s.cfg), ledger, s.publisher, s.f.Clock, s.cfg, s.f.Logger)
}

func (s *coordinatorSuite) request(start time.Time) commands.ReserveRequest {
	return commands.ReserveRequest{
		HostID:        s.f.Host.ID(),
		EventTypeID:   s.f.EventType.ID(),
		SlotStart:     start,
		AttendeeName:  "Grace Hopper",
		AttendeeEmail: "grace@example.com",
		Notes:         "compilers",
	}
}

func kindIs(kind shared.EventKind) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		evt, ok := x.(shared.BookingEvent)
		return ok && evt.Kind == kind
	})
}

func TestReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms a generated slot and publishes", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())
		var published shared.BookingEvent
		s.publisher.EXPECT().Publish(gomock.Any(), kindIs(shared.EventBookingConfirmed)).
			DoAndReturn(func(_ context.Context, evt shared.BookingEvent) error {
				published = evt
				return nil
			})

		view, err := s.coordinator(nil).Reserve(ctx, s.request(builder.At(10, 0).In(time.FixedZone("CET", 3600))))

		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed.String(), view.Status)
		assert.Equal(t, builder.At(10, 0), view.SlotStart)
		assert.Equal(t, builder.At(10, 30), view.SlotEnd)
		assert.Equal(t, "grace@example.com", view.Attendee.Email)
		assert.Equal(t, view.ID, published.BookingID)
		assert.Equal(t, s.f.Host.ID(), published.HostID)
	})

	t.Run("taken slot is a conflict with alternatives", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
		c := s.coordinator(nil)
		_, err := c.Reserve(ctx, s.request(builder.At(10, 0)))
		require.NoError(t, err)

		_, err = c.Reserve(ctx, s.request(builder.At(10, 0)))

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		var conflict *commands.ConflictError
		require.True(t, errs.As(err, &conflict))
		assert.Len(t, conflict.Alternatives, s.cfg.AlternativeLimit)
		assert.Equal(t, builder.At(9, 0), conflict.Alternatives[0].Start)
		for _, alt := range conflict.Alternatives {
			assert.NotEqual(t, builder.At(10, 0), alt.Start)
		}
	})

	t.Run("alternatives come from the following days", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder().With(func(b *builder.ScheduleBuilder) {
			b.Weekly[time.Monday] = [][2]string{{"09:00", "10:00"}}
			b.Weekly[time.Wednesday] = [][2]string{{"09:00", "10:00"}}
		}))
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
		c := s.coordinator(nil)
		_, err := c.Reserve(ctx, s.request(builder.At(9, 0)))
		require.NoError(t, err)

		_, err = c.Reserve(ctx, s.request(builder.At(9, 0)))

		var conflict *commands.ConflictError
		require.True(t, errs.As(err, &conflict))
		wednesday := builder.Monday.Add(48 * time.Hour)
		got := make([]time.Time, 0, len(conflict.Alternatives))
		for _, alt := range conflict.Alternatives {
			got = append(got, alt.Start)
		}
		assert.Equal(t, []time.Time{
			builder.At(9, 30),
			wednesday.Add(9 * time.Hour),
			wednesday.Add(9*time.Hour + 30*time.Minute),
		}, got)
	})

	t.Run("busy time is a conflict", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())
		window := timerange.Range{Start: builder.Monday, End: builder.Monday.Add(24 * time.Hour)}
		require.NoError(t, s.f.Busy.ReplaceBusy(ctx, s.f.Host.ID(), window, []timerange.Range{
			{Start: builder.At(10, 0), End: builder.At(10, 30)},
		}))

		_, err := s.coordinator(nil).Reserve(ctx, s.request(builder.At(10, 0)))

		var conflict *commands.ConflictError
		require.True(t, errs.As(err, &conflict))
		assert.NotEmpty(t, conflict.Alternatives)
	})

	t.Run("slot outside availability is invalid", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())

		_, err := s.coordinator(nil).Reserve(ctx, s.request(builder.At(17, 0)))

		assert.True(t, errs.Is(err, errs.ErrInvalidSlot))
		assert.False(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("off-grid slot is invalid", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())

		_, err := s.coordinator(nil).Reserve(ctx, s.request(builder.At(10, 10)))

		assert.True(t, errs.Is(err, errs.ErrInvalidSlot))
		assert.True(t, errs.Is(err, commands.ErrSlotOffGrid))
	})

	t.Run("slot inside minimum notice is invalid", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder().With(func(b *builder.ScheduleBuilder) {
			b.Now = builder.At(9, 0)
			b.EventType.MinimumNotice = 2 * time.Hour
		}))

		_, err := s.coordinator(nil).Reserve(ctx, s.request(builder.At(10, 0)))

		assert.True(t, errs.Is(err, errs.ErrInvalidSlot))
	})

	t.Run("inactive event type", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder().With(func(b *builder.ScheduleBuilder) {
			b.EventType.Active = false
		}))

		_, err := s.coordinator(nil).Reserve(ctx, s.request(builder.At(10, 0)))

		assert.True(t, errs.Is(err, errs.ErrEventTypeInactive))
	})

	t.Run("unknown event type", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())
		req := s.request(builder.At(10, 0))
		req.EventTypeID = uuid.New()

		_, err := s.coordinator(nil).Reserve(ctx, req)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("invalid attendee", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())
		req := s.request(builder.At(10, 0))
		req.AttendeeEmail = "not-an-email"

		_, err := s.coordinator(nil).Reserve(ctx, req)

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("slots listed over a partial window are bookable", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
		attendee, err := booking.NewAttendee("Ada", "ada@example.com", "")
		require.NoError(t, err)
		long, err := booking.NewBooking(s.f.Host.ID(), uuid.New(), builder.At(9, 0),
			booking.Spec{Duration: 45 * time.Minute}, attendee, s.f.Clock.Now())
		require.NoError(t, err)
		_, err = s.f.Ledger.TryReserve(ctx, long)
		require.NoError(t, err)

		views, err := s.f.SlotGenerator(s.cfg).
			ListSlots(ctx, s.f.Host.ID(), s.f.EventType.ID(), builder.At(10, 15), builder.At(12, 0))
		require.NoError(t, err)
		require.NotEmpty(t, views)
		assert.Equal(t, builder.At(10, 15), views[0].Start)

		view, err := s.coordinator(nil).Reserve(ctx, s.request(views[0].Start))

		require.NoError(t, err)
		assert.Equal(t, views[0].Start, view.SlotStart)
	})

	t.Run("publish failure does not fail the booking", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		view, err := s.coordinator(nil).Reserve(ctx, s.request(builder.At(10, 0)))

		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed.String(), view.Status)
	})
}

func TestReserveConcurrently(t *testing.T) {
	s := newCoordinatorSuite(t, builder.NewScheduleBuilder())
	s.publisher.EXPECT().Publish(gomock.Any(), kindIs(shared.EventBookingConfirmed)).Return(nil).Times(1)
	c := s.coordinator(nil)

	const attempts = 8
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = c.Reserve(context.Background(), s.request(builder.At(10, 0)))
		}()
	}
	wg.Wait()

	var confirmed, conflicts int
	for _, err := range results {
		var conflict *commands.ConflictError
		switch {
		case err == nil:
			confirmed++
		case errs.As(err, &conflict):
			conflicts++
			assert.NotEmpty(t, conflict.Alternatives)
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, confirmed)
	assert.Equal(t, attempts-1, conflicts)
}

// stuckLedger never gets the host lock.
type stuckLedger struct {
	shared.ReservationLedger
}

func (stuckLedger) TryReserve(ctx context.Context, _ *booking.Booking) (*booking.Booking, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestReserveTimeout(t *testing.T) {
	s := newCoordinatorSuite(t, builder.NewScheduleBuilder())
	s.cfg.ReservationTimeout = 20 * time.Millisecond

	_, err := s.coordinator(stuckLedger{s.f.Ledger}).Reserve(context.Background(), s.request(builder.At(10, 0)))

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrReservationTimeout))
	assert.False(t, errs.Is(err, errs.ErrConflict))
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	book := func(t *testing.T, s *coordinatorSuite, c commands.BookingCommands) uuid.UUID {
		t.Helper()
		s.publisher.EXPECT().Publish(gomock.Any(), kindIs(shared.EventBookingConfirmed)).Return(nil)
		view, err := c.Reserve(ctx, s.request(builder.At(10, 0)))
		require.NoError(t, err)
		return view.ID
	}

	t.Run("frees the slot and publishes", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())
		c := s.coordinator(nil)
		id := book(t, s, c)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Cond(func(x any) bool {
			evt := x.(shared.BookingEvent)
			return evt.Kind == shared.EventBookingCancelled && evt.BookingID == id && evt.Reason == "sick"
		})).Return(nil)

		require.NoError(t, c.Cancel(ctx, id, "sick"))

		stored, err := s.f.Ledger.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, stored.Status())

		s.publisher.EXPECT().Publish(gomock.Any(), kindIs(shared.EventBookingConfirmed)).Return(nil)
		_, err = c.Reserve(ctx, s.request(builder.At(10, 0)))
		assert.NoError(t, err)
	})

	t.Run("second cancel is a no-op", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())
		c := s.coordinator(nil)
		id := book(t, s, c)
		s.publisher.EXPECT().Publish(gomock.Any(), kindIs(shared.EventBookingCancelled)).Return(nil).Times(1)

		require.NoError(t, c.Cancel(ctx, id, ""))
		assert.NoError(t, c.Cancel(ctx, id, ""))
	})

	t.Run("unknown booking", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())

		err := s.coordinator(nil).Cancel(ctx, uuid.New(), "")

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		s := newCoordinatorSuite(t, builder.NewScheduleBuilder())
		c := s.coordinator(nil)
		id := book(t, s, c)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.NoError(t, c.Cancel(ctx, id, ""))
	})
}
