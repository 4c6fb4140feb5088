package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const upsertWeeklySchedule = `
INSERT INTO weekly_schedules (host_id, updated_at) VALUES ($1, now())
ON CONFLICT (host_id) DO UPDATE SET updated_at = now()`

func (q *Queries) UpsertWeeklySchedule(ctx context.Context, db DBTX, hostID uuid.UUID) error {
	_, err := db.Exec(ctx, upsertWeeklySchedule, hostID)
	return err
}

const deleteWeeklyRules = `DELETE FROM weekly_rules WHERE host_id = $1`

func (q *Queries) DeleteWeeklyRules(ctx context.Context, db DBTX, hostID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteWeeklyRules, hostID)
	return err
}

const insertWeeklyRule = `
INSERT INTO weekly_rules (host_id, day_of_week, start_minute, end_minute)
VALUES ($1, $2, $3, $4)`

// InsertWeeklyRules queues one insert per rule in a single batch.
func (q *Queries) InsertWeeklyRules(ctx context.Context, db DBTX, hostID uuid.UUID, rules []WeeklyRule) error {
	batch := &pgx.Batch{}
	for _, r := range rules {
		batch.Queue(insertWeeklyRule, hostID, r.DayOfWeek, r.StartMinute, r.EndMinute)
	}
	return execBatch(ctx, db, batch)
}

const hasWeeklySchedule = `SELECT EXISTS (SELECT 1 FROM weekly_schedules WHERE host_id = $1)`

func (q *Queries) HasWeeklySchedule(ctx context.Context, db DBTX, hostID uuid.UUID) (bool, error) {
	var ok bool
	err := db.QueryRow(ctx, hasWeeklySchedule, hostID).Scan(&ok)
	return ok, err
}

const listWeeklyRules = `
SELECT day_of_week, start_minute, end_minute
FROM weekly_rules WHERE host_id = $1
ORDER BY day_of_week, start_minute`

func (q *Queries) ListWeeklyRules(ctx context.Context, db DBTX, hostID uuid.UUID) ([]WeeklyRule, error) {
	rows, err := db.Query(ctx, listWeeklyRules, hostID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (WeeklyRule, error) {
		var r WeeklyRule
		err := row.Scan(&r.DayOfWeek, &r.StartMinute, &r.EndMinute)
		return r, err
	})
}

const upsertDateOverride = `
INSERT INTO date_overrides (host_id, override_date, status, start_minutes, end_minutes)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (host_id, override_date) DO UPDATE
SET status = EXCLUDED.status,
    start_minutes = EXCLUDED.start_minutes,
    end_minutes = EXCLUDED.end_minutes`

func (q *Queries) UpsertDateOverrides(ctx context.Context, db DBTX, hostID uuid.UUID, overrides []DateOverride) error {
	batch := &pgx.Batch{}
	for _, o := range overrides {
		batch.Queue(upsertDateOverride, hostID, o.OverrideDate, o.Status, o.StartMinutes, o.EndMinutes)
	}
	return execBatch(ctx, db, batch)
}

const deleteDateOverride = `DELETE FROM date_overrides WHERE host_id = $1 AND override_date = $2`

func (q *Queries) DeleteDateOverride(ctx context.Context, db DBTX, hostID uuid.UUID, date pgtype.Date) (int64, error) {
	tag, err := db.Exec(ctx, deleteDateOverride, hostID, date)
	return tag.RowsAffected(), err
}

const listDateOverrides = `
SELECT override_date, status, start_minutes, end_minutes
FROM date_overrides
WHERE host_id = $1 AND override_date BETWEEN $2 AND $3
ORDER BY override_date`

type ListDateOverridesParams struct {
	HostID uuid.UUID
	From   pgtype.Date
	To     pgtype.Date
}

func (q *Queries) ListDateOverrides(ctx context.Context, db DBTX, arg ListDateOverridesParams) ([]DateOverride, error) {
	rows, err := db.Query(ctx, listDateOverrides, arg.HostID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (DateOverride, error) {
		var o DateOverride
		err := row.Scan(&o.OverrideDate, &o.Status, &o.StartMinutes, &o.EndMinutes)
		return o, err
	})
}

const hasAvailability = `
SELECT EXISTS (SELECT 1 FROM weekly_schedules WHERE host_id = $1)
    OR EXISTS (SELECT 1 FROM date_overrides WHERE host_id = $1)`

func (q *Queries) HasAvailability(ctx context.Context, db DBTX, hostID uuid.UUID) (bool, error) {
	var ok bool
	err := db.QueryRow(ctx, hasAvailability, hostID).Scan(&ok)
	return ok, err
}
