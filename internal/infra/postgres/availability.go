package postgres

import (
	"context"
	"log/slog"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/infra"
	"slotbook/internal/infra/postgres/pgq"
	"slotbook/internal/infra/uow"
	"slotbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityQueries interface {
	UpsertWeeklySchedule(ctx context.Context, db pgq.DBTX, hostID uuid.UUID) error
	DeleteWeeklyRules(ctx context.Context, db pgq.DBTX, hostID uuid.UUID) error
	InsertWeeklyRules(ctx context.Context, db pgq.DBTX, hostID uuid.UUID, rules []pgq.WeeklyRule) error
	HasWeeklySchedule(ctx context.Context, db pgq.DBTX, hostID uuid.UUID) (bool, error)
	ListWeeklyRules(ctx context.Context, db pgq.DBTX, hostID uuid.UUID) ([]pgq.WeeklyRule, error)
	UpsertDateOverrides(ctx context.Context, db pgq.DBTX, hostID uuid.UUID, overrides []pgq.DateOverride) error
	DeleteDateOverride(ctx context.Context, db pgq.DBTX, hostID uuid.UUID, date pgtype.Date) (int64, error)
	ListDateOverrides(ctx context.Context, db pgq.DBTX, arg pgq.ListDateOverridesParams) ([]pgq.DateOverride, error)
	HasAvailability(ctx context.Context, db pgq.DBTX, hostID uuid.UUID) (bool, error)
}

type AvailabilityStore struct {
	queries AvailabilityQueries
	uow     *uow.PostgresUoW
	logger  *slog.Logger
}

func NewAvailabilityStore(queries *pgq.Queries, u *uow.PostgresUoW, logger *slog.Logger) *AvailabilityStore {
	return &AvailabilityStore{queries: queries, uow: u, logger: logger}
}

func (s *AvailabilityStore) ReplaceWeeklyRules(ctx context.Context, hostID uuid.UUID, week []availability.WeeklyRule) error {
	var rows []pgq.WeeklyRule
	for _, rule := range week {
		for _, iv := range rule.Intervals() {
			rows = append(rows, pgq.WeeklyRule{
				DayOfWeek:   int16(rule.Day()),
				StartMinute: int16(iv.Start), // #nosec G115 -- at most 1440
				EndMinute:   int16(iv.End),   // #nosec G115 -- at most 1440
			})
		}
	}
	err := s.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.queries.UpsertWeeklySchedule(ctx, tx, hostID); err != nil {
			return err
		}
		if err := s.queries.DeleteWeeklyRules(ctx, tx, hostID); err != nil {
			return err
		}
		return s.queries.InsertWeeklyRules(ctx, tx, hostID, rows)
	})
	return mapErr(s.logger, "failed to replace weekly rules", err)
}

func (s *AvailabilityStore) WeeklyRules(ctx context.Context, hostID uuid.UUID) ([]availability.WeeklyRule, error) {
	configured, err := s.queries.HasWeeklySchedule(ctx, s.uow.DB(), hostID)
	if err != nil {
		return nil, mapErr(s.logger, "failed to load weekly schedule", err)
	}
	if !configured {
		return nil, nil
	}

	rows, err := s.queries.ListWeeklyRules(ctx, s.uow.DB(), hostID)
	if err != nil {
		return nil, mapErr(s.logger, "failed to load weekly rules", err)
	}
	var byDay [7][]availability.LocalInterval
	for _, r := range rows {
		byDay[r.DayOfWeek] = append(byDay[r.DayOfWeek], availability.LocalInterval{
			Start: availability.ClockTime(r.StartMinute),
			End:   availability.ClockTime(r.EndMinute),
		})
	}

	rules := make([]availability.WeeklyRule, 0, 7)
	for day, ivs := range byDay {
		rule, err := availability.NewWeeklyRule(time.Weekday(day), ivs)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "stored weekly rule is invalid", err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (s *AvailabilityStore) PutOverrides(ctx context.Context, hostID uuid.UUID, overrides []availability.DateOverride) error {
	rows := make([]pgq.DateOverride, len(overrides))
	for i, o := range overrides {
		starts, ends := splitIntervals(o.Intervals())
		rows[i] = pgq.DateOverride{
			OverrideDate: dateToPgtype(o.Date()),
			Status:       string(o.Status()),
			StartMinutes: starts,
			EndMinutes:   ends,
		}
	}
	err := s.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.queries.UpsertDateOverrides(ctx, tx, hostID, rows)
	})
	return mapErr(s.logger, "failed to store overrides", err)
}

func (s *AvailabilityStore) DeleteOverride(ctx context.Context, hostID uuid.UUID, date availability.Date) error {
	n, err := s.queries.DeleteDateOverride(ctx, s.uow.DB(), hostID, dateToPgtype(date))
	if err != nil {
		return mapErr(s.logger, "failed to delete override", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "override not found", nil)
	}
	return nil
}

func (s *AvailabilityStore) Overrides(ctx context.Context, hostID uuid.UUID, from, to availability.Date) ([]availability.DateOverride, error) {
	rows, err := s.queries.ListDateOverrides(ctx, s.uow.DB(), pgq.ListDateOverridesParams{
		HostID: hostID,
		From:   dateToPgtype(from),
		To:     dateToPgtype(to),
	})
	if err != nil {
		return nil, mapErr(s.logger, "failed to load overrides", err)
	}

	var out []availability.DateOverride
	for _, row := range rows {
		ivs := make([]availability.LocalInterval, len(row.StartMinutes))
		for i := range row.StartMinutes {
			ivs[i] = availability.LocalInterval{
				Start: availability.ClockTime(row.StartMinutes[i]),
				End:   availability.ClockTime(row.EndMinutes[i]),
			}
		}
		o, err := availability.NewDateOverride(
			availability.NewDate(pgconv.DateFromPgtype(row.OverrideDate)),
			availability.OverrideStatus(row.Status), ivs)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "stored override is invalid", err)
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *AvailabilityStore) HasRules(ctx context.Context, hostID uuid.UUID) (bool, error) {
	ok, err := s.queries.HasAvailability(ctx, s.uow.DB(), hostID)
	if err != nil {
		return false, mapErr(s.logger, "failed to check availability rules", err)
	}
	return ok, nil
}

func dateToPgtype(d availability.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Year(), d.Month(), d.Day())
}

func splitIntervals(ivs []availability.LocalInterval) (starts, ends []int16) {
	starts = make([]int16, len(ivs))
	ends = make([]int16, len(ivs))
	for i, iv := range ivs {
		starts[i] = int16(iv.Start) // #nosec G115 -- at most 1440
		ends[i] = int16(iv.End)     // #nosec G115 -- at most 1440
	}
	return starts, ends
}
