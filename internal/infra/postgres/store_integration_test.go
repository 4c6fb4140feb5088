//go:build integration

package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/eventtype"
	"slotbook/internal/domain/host"
	"slotbook/internal/domain/timerange"
	"slotbook/internal/infra"
	"slotbook/internal/infra/postgres"
	"slotbook/internal/infra/postgres/pgq"
	"slotbook/internal/infra/uow"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"
	"slotbook/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

var (
	now    = time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	monday = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)
)

type StoreSuite struct {
	suite.Suite
	pool         *pgxpool.Pool
	hosts        *postgres.HostStore
	availability *postgres.AvailabilityStore
	eventTypes   *postgres.EventTypeStore
	busy         *postgres.BusyTimeStore
	ledger       *postgres.Ledger
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	s.pool = dbtest.StartPostgres(s.T())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	u := uow.NewPostgresUoW(s.pool, logger)
	q := pgq.New()
	s.hosts = postgres.NewHostStore(q, u, logger)
	s.availability = postgres.NewAvailabilityStore(q, u, logger)
	s.eventTypes = postgres.NewEventTypeStore(q, u, logger)
	s.busy = postgres.NewBusyTimeStore(q, u, logger)
	s.ledger = postgres.NewLedger(q, u, clock.NewMockClock(now), logger)
}

func (s *StoreSuite) SetupSubTest() {
	s.Require().NoError(dbtest.ResetDB(s.pool))
}

func (s *StoreSuite) newHost(username string) *host.Host {
	h, err := host.NewHost(username, "Host "+username, username+"@example.com", "Europe/Berlin", now)
	s.Require().NoError(err)
	s.Require().NoError(s.hosts.Create(context.Background(), h))
	return h
}

func (s *StoreSuite) pending(hostID uuid.UUID, start time.Time, spec booking.Spec) *booking.Booking {
	attendee, err := booking.NewAttendee("Grace", "grace@example.com", "")
	s.Require().NoError(err)
	b, err := booking.NewBooking(hostID, uuid.New(), start, spec, attendee, now)
	s.Require().NoError(err)
	return b
}

func (s *StoreSuite) TestHosts() {
	ctx := context.Background()

	s.Run("round trip keeps the timezone", func() {
		h := s.newHost("ada")

		got, err := s.hosts.Get(ctx, h.ID())

		s.Require().NoError(err)
		s.Equal("ada", got.Username())
		s.Equal("Europe/Berlin", got.Timezone())
	})

	s.Run("duplicate username", func() {
		s.newHost("ada")
		dup, err := host.NewHost("ada", "Other", "other@example.com", "UTC", now)
		s.Require().NoError(err)

		err = s.hosts.Create(ctx, dup)

		s.True(infra.IsKind(err, infra.KindDuplicateKey))
	})

	s.Run("unknown host", func() {
		_, err := s.hosts.Get(ctx, uuid.New())

		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("lookup by username", func() {
		h := s.newHost("ada")

		got, err := s.hosts.GetByUsername(ctx, "ada")
		s.Require().NoError(err)
		s.Equal(h.ID(), got.ID())

		_, err = s.hosts.GetByUsername(ctx, "nobody")
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *StoreSuite) TestAvailability() {
	ctx := context.Background()

	s.Run("weekly rules replace the whole week", func() {
		h := s.newHost("ada")
		morning, err := availability.ParseLocalInterval("09:00", "12:00")
		s.Require().NoError(err)
		afternoon, err := availability.ParseLocalInterval("13:00", "17:00")
		s.Require().NoError(err)
		rule, err := availability.NewWeeklyRule(time.Monday, []availability.LocalInterval{afternoon, morning})
		s.Require().NoError(err)
		week, err := availability.NewWeek([]availability.WeeklyRule{rule})
		s.Require().NoError(err)

		s.Require().NoError(s.availability.ReplaceWeeklyRules(ctx, h.ID(), week))
		got, err := s.availability.WeeklyRules(ctx, h.ID())

		s.Require().NoError(err)
		s.Require().Len(got, 7)
		s.Equal([]availability.LocalInterval{morning, afternoon}, got[time.Monday].Intervals())
		s.True(got[time.Tuesday].IsUnavailable())

		ok, err := s.availability.HasRules(ctx, h.ID())
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("host without rules", func() {
		h := s.newHost("bob")

		got, err := s.availability.WeeklyRules(ctx, h.ID())
		s.Require().NoError(err)
		s.Nil(got)

		ok, err := s.availability.HasRules(ctx, h.ID())
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("overrides upsert and delete", func() {
		h := s.newHost("ada")
		first := availability.NewDate(2030, time.January, 7)
		ooo, err := availability.NewDateRangeOverrides(first, first.AddDays(2), availability.OverrideOutOfOffice, nil)
		s.Require().NoError(err)
		s.Require().NoError(s.availability.PutOverrides(ctx, h.ID(), ooo))

		iv, err := availability.ParseLocalInterval("10:00", "11:00")
		s.Require().NoError(err)
		open, err := availability.NewDateOverride(first, availability.OverrideAvailable, []availability.LocalInterval{iv})
		s.Require().NoError(err)
		s.Require().NoError(s.availability.PutOverrides(ctx, h.ID(), []availability.DateOverride{open}))

		got, err := s.availability.Overrides(ctx, h.ID(), first, first.AddDays(6))
		s.Require().NoError(err)
		s.Require().Len(got, 3)
		s.Equal(availability.OverrideAvailable, got[0].Status())
		s.Equal([]availability.LocalInterval{iv}, got[0].Intervals())

		s.Require().NoError(s.availability.DeleteOverride(ctx, h.ID(), first))
		err = s.availability.DeleteOverride(ctx, h.ID(), first)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *StoreSuite) TestEventTypes() {
	ctx := context.Background()

	s.Run("slug is unique per host", func() {
		h := s.newHost("ada")
		params := eventtype.Params{Title: "Intro", Slug: "intro", Duration: 30 * time.Minute, Active: true}
		et, err := eventtype.NewEventType(h.ID(), params, now)
		s.Require().NoError(err)
		s.Require().NoError(s.eventTypes.Create(ctx, et))

		dup, err := eventtype.NewEventType(h.ID(), params, now)
		s.Require().NoError(err)
		err = s.eventTypes.Create(ctx, dup)
		s.True(infra.IsKind(err, infra.KindDuplicateKey))

		other := s.newHost("bob")
		same, err := eventtype.NewEventType(other.ID(), params, now)
		s.Require().NoError(err)
		s.NoError(s.eventTypes.Create(ctx, same))

		got, err := s.eventTypes.Get(ctx, et.ID())
		s.Require().NoError(err)
		s.Equal(30*time.Minute, got.Duration())

		bySlug, err := s.eventTypes.GetBySlug(ctx, other.ID(), "intro")
		s.Require().NoError(err)
		s.Equal(same.ID(), bySlug.ID())

		_, err = s.eventTypes.GetBySlug(ctx, other.ID(), "missing")
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *StoreSuite) TestBusy() {
	ctx := context.Background()

	s.Run("replace only touches the window", func() {
		h := s.newHost("ada")
		day := timerange.Range{Start: monday, End: monday.Add(24 * time.Hour)}
		nextDay := timerange.Range{Start: day.End, End: day.End.Add(24 * time.Hour)}
		s.Require().NoError(s.busy.ReplaceBusy(ctx, h.ID(), nextDay, []timerange.Range{
			{Start: nextDay.Start.Add(9 * time.Hour), End: nextDay.Start.Add(10 * time.Hour)},
		}))

		s.Require().NoError(s.busy.ReplaceBusy(ctx, h.ID(), day, []timerange.Range{
			{Start: monday.Add(12 * time.Hour), End: monday.Add(13 * time.Hour)},
			{Start: monday.Add(12*time.Hour + 30*time.Minute), End: monday.Add(14 * time.Hour)},
		}))

		got, err := s.busy.Busy(ctx, h.ID(), timerange.Range{Start: day.Start, End: nextDay.End})
		s.Require().NoError(err)
		s.Equal([]timerange.Range{
			{Start: monday.Add(12 * time.Hour), End: monday.Add(14 * time.Hour)},
			{Start: nextDay.Start.Add(9 * time.Hour), End: nextDay.Start.Add(10 * time.Hour)},
		}, got)
	})

	s.Run("resync keeps touching blocks of a neighbouring window", func() {
		h := s.newHost("ada")
		at := func(hour int) time.Time { return monday.Add(time.Duration(hour) * time.Hour) }
		s.Require().NoError(s.busy.ReplaceBusy(ctx, h.ID(), timerange.Must(at(6), at(10)),
			[]timerange.Range{timerange.Must(at(8), at(10))}))
		s.Require().NoError(s.busy.ReplaceBusy(ctx, h.ID(), timerange.Must(at(10), at(12)),
			[]timerange.Range{timerange.Must(at(10), at(11))}))

		s.Require().NoError(s.busy.ReplaceBusy(ctx, h.ID(), timerange.Must(at(10), at(12)), nil))

		got, err := s.busy.Busy(ctx, h.ID(), timerange.Must(at(0), at(24)))
		s.Require().NoError(err)
		s.Equal([]timerange.Range{timerange.Must(at(8), at(10))}, got)
	})
}

func (s *StoreSuite) TestLedger() {
	ctx := context.Background()
	spec := booking.Spec{Duration: 30 * time.Minute}
	start := monday.Add(10 * time.Hour)

	s.Run("overlap and buffers are conflicts", func() {
		h := s.newHost("ada")
		stored, err := s.ledger.TryReserve(ctx, s.pending(h.ID(), start, spec))
		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, stored.Status())

		_, err = s.ledger.TryReserve(ctx, s.pending(h.ID(), start.Add(15*time.Minute), spec))
		s.True(errs.Is(err, errs.ErrConflict))

		_, err = s.ledger.TryReserve(ctx, s.pending(h.ID(), start.Add(30*time.Minute),
			booking.Spec{Duration: 30 * time.Minute, BufferBefore: time.Minute}))
		s.True(errs.Is(err, errs.ErrConflict))

		_, err = s.ledger.TryReserve(ctx, s.pending(h.ID(), start.Add(30*time.Minute), spec))
		s.NoError(err)
		s.Equal(2, dbtest.CountActiveBookings(s.T(), s.pool, h.ID()))
	})

	s.Run("concurrent reservations admit exactly one", func() {
		h := s.newHost("ada")
		const n = 8
		results := make([]error, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reserveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				defer cancel()
				_, results[i] = s.ledger.TryReserve(reserveCtx, s.pending(h.ID(), start, spec))
			}()
		}
		wg.Wait()

		confirmed := 0
		for _, err := range results {
			if err == nil {
				confirmed++
				continue
			}
			s.True(errs.Is(err, errs.ErrConflict), err.Error())
		}
		s.Equal(1, confirmed)
		s.Equal(1, dbtest.CountActiveBookings(s.T(), s.pool, h.ID()))
	})

	s.Run("cancel frees the range once", func() {
		h := s.newHost("ada")
		stored, err := s.ledger.TryReserve(ctx, s.pending(h.ID(), start, spec))
		s.Require().NoError(err)

		cancelled, err := s.ledger.Cancel(ctx, stored.ID(), "moved", now)
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, cancelled.Status())
		s.Equal(stored.Version()+1, cancelled.Version())
		s.Equal("cancelled", dbtest.BookingStatus(s.T(), s.pool, stored.ID()))

		_, err = s.ledger.Cancel(ctx, stored.ID(), "", now)
		s.ErrorIs(err, booking.ErrAlreadyCancelled)

		_, err = s.ledger.TryReserve(ctx, s.pending(h.ID(), start, spec))
		s.NoError(err)
	})

	s.Run("unknown booking", func() {
		_, err := s.ledger.Get(ctx, uuid.New())
		s.True(errs.Is(err, errs.ErrNotFound))

		_, err = s.ledger.Cancel(ctx, uuid.New(), "", now)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("lists by window and scope", func() {
		h := s.newHost("ada")
		early, err := s.ledger.TryReserve(ctx, s.pending(h.ID(), monday.Add(9*time.Hour), spec))
		s.Require().NoError(err)
		late, err := s.ledger.TryReserve(ctx, s.pending(h.ID(), monday.Add(15*time.Hour), spec))
		s.Require().NoError(err)

		active, err := s.ledger.ListActive(ctx, h.ID(), timerange.Range{Start: monday.Add(14 * time.Hour), End: monday.Add(16 * time.Hour)})
		s.Require().NoError(err)
		s.Require().Len(active, 1)
		s.Equal(late.ID(), active[0].ID())

		noon := monday.Add(12 * time.Hour)
		upcoming, err := s.ledger.ListByHost(ctx, h.ID(), shared.ScopeUpcoming, noon, 10)
		s.Require().NoError(err)
		s.Require().Len(upcoming, 1)
		s.Equal(late.ID(), upcoming[0].ID())

		past, err := s.ledger.ListByHost(ctx, h.ID(), shared.ScopePast, noon, 10)
		s.Require().NoError(err)
		s.Require().Len(past, 1)
		s.Equal(early.ID(), past[0].ID())
		s.True(past[0].SlotStart().Equal(monday.Add(9 * time.Hour)))
	})

	s.Run("expired deadline is a timeout", func() {
		h := s.newHost("ada")
		expired, cancel := context.WithDeadline(ctx, time.Now().Add(-time.Second))
		defer cancel()

		_, err := s.ledger.TryReserve(expired, s.pending(h.ID(), start, spec))

		s.True(errs.Is(err, errs.ErrReservationTimeout) || infra.IsKind(err, infra.KindDBFailure), err.Error())
	})
}
