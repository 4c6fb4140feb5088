//go:build unit || e2e

package builder

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/eventtype"
	"slotbook/internal/domain/host"
	"slotbook/internal/infra/memory"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/queries"

	"github.com/stretchr/testify/require"
)

// Monday is a Monday far enough ahead that minimum notice never interferes.
var Monday = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

type ScheduleBuilder struct {
	Username  string
	Timezone  string
	Now       time.Time
	Weekly    map[time.Weekday][][2]string
	EventType eventtype.Params
}

// NewScheduleBuilder describes a UTC host available Mondays 09:00-17:00 with a
// 30 minute event type.
func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		Username: "ada",
		Timezone: "UTC",
		Now:      time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC),
		Weekly: map[time.Weekday][][2]string{
			time.Monday: {{"09:00", "17:00"}},
		},
		EventType: eventtype.Params{
			Title:    "Intro call",
			Slug:     "intro",
			Duration: 30 * time.Minute,
			Active:   true,
		},
	}
}

func (b *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(b)
	return b
}

// Fixture is a host with stored availability and one event type, backed by
// the in-memory stores.
type Fixture struct {
	Clock        *clock.MockClock
	Logger       *slog.Logger
	Hosts        *memory.HostStore
	Availability *memory.AvailabilityStore
	EventTypes   *memory.EventTypeStore
	Busy         *memory.BusyTimeStore
	Ledger       *memory.Ledger
	Host         *host.Host
	EventType    *eventtype.EventType
}

func (b *ScheduleBuilder) Build(t *testing.T) *Fixture {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(b.Now)

	f := &Fixture{
		Clock:        clk,
		Logger:       logger,
		Hosts:        memory.NewHostStore(logger),
		Availability: memory.NewAvailabilityStore(logger),
		EventTypes:   memory.NewEventTypeStore(logger),
		Busy:         memory.NewBusyTimeStore(),
		Ledger:       memory.NewLedger(clk, logger),
	}

	h, err := host.NewHost(b.Username, "Ada Lovelace", b.Username+"@example.com", b.Timezone, b.Now)
	require.NoError(t, err)
	require.NoError(t, f.Hosts.Create(ctx, h))
	f.Host = h

	if b.Weekly != nil {
		rules := make([]availability.WeeklyRule, 0, len(b.Weekly))
		for day, spans := range b.Weekly {
			ivs := make([]availability.LocalInterval, 0, len(spans))
			for _, s := range spans {
				iv, err := availability.ParseLocalInterval(s[0], s[1])
				require.NoError(t, err)
				ivs = append(ivs, iv)
			}
			rule, err := availability.NewWeeklyRule(day, ivs)
			require.NoError(t, err)
			rules = append(rules, rule)
		}
		week, err := availability.NewWeek(rules)
		require.NoError(t, err)
		require.NoError(t, f.Availability.ReplaceWeeklyRules(ctx, h.ID(), week))
	}

	et, err := eventtype.NewEventType(h.ID(), b.EventType, b.Now)
	require.NoError(t, err)
	require.NoError(t, f.EventTypes.Create(ctx, et))
	f.EventType = et

	return f
}

func BookingConfig() config.BookingConfig {
	return config.NewTestConfig().Booking
}

func (f *Fixture) SlotGenerator(cfg config.BookingConfig) *queries.SlotGenerator {
	return queries.NewSlotGenerator(f.Hosts, f.Availability, f.EventTypes, f.Busy, f.Ledger, f.Clock, cfg)
}

// At returns the instant on Monday at hh:mm UTC.
func At(hour, minute int) time.Time {
	return Monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}
