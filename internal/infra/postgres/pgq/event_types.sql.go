package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventTypeColumns = `id, host_id, title, slug, description, duration_minutes,
	buffer_before_minutes, buffer_after_minutes, slot_step_minutes,
	minimum_notice_minutes, active, created_at, updated_at`

func scanEventType(row pgx.Row) (EventType, error) {
	var e EventType
	err := row.Scan(&e.ID, &e.HostID, &e.Title, &e.Slug, &e.Description, &e.DurationMinutes,
		&e.BufferBeforeMinutes, &e.BufferAfterMinutes, &e.SlotStepMinutes,
		&e.MinimumNoticeMinutes, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

const createEventType = `
INSERT INTO event_types (` + eventTypeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (q *Queries) CreateEventType(ctx context.Context, db DBTX, arg EventType) error {
	_, err := db.Exec(ctx, createEventType,
		arg.ID, arg.HostID, arg.Title, arg.Slug, arg.Description, arg.DurationMinutes,
		arg.BufferBeforeMinutes, arg.BufferAfterMinutes, arg.SlotStepMinutes,
		arg.MinimumNoticeMinutes, arg.Active, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const getEventTypeByID = `SELECT ` + eventTypeColumns + ` FROM event_types WHERE id = $1`

func (q *Queries) GetEventTypeByID(ctx context.Context, db DBTX, id uuid.UUID) (EventType, error) {
	return scanEventType(db.QueryRow(ctx, getEventTypeByID, id))
}

const getEventTypeBySlug = `
SELECT ` + eventTypeColumns + ` FROM event_types
WHERE host_id = $1 AND slug = $2`

type GetEventTypeBySlugParams struct {
	HostID uuid.UUID
	Slug   string
}

func (q *Queries) GetEventTypeBySlug(ctx context.Context, db DBTX, arg GetEventTypeBySlugParams) (EventType, error) {
	return scanEventType(db.QueryRow(ctx, getEventTypeBySlug, arg.HostID, arg.Slug))
}

const listEventTypesByHost = `
SELECT ` + eventTypeColumns + ` FROM event_types
WHERE host_id = $1 ORDER BY created_at, id`

func (q *Queries) ListEventTypesByHost(ctx context.Context, db DBTX, hostID uuid.UUID) ([]EventType, error) {
	rows, err := db.Query(ctx, listEventTypesByHost, hostID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanEventType)
}

const updateEventType = `
UPDATE event_types SET
	title = $2, slug = $3, description = $4, duration_minutes = $5,
	buffer_before_minutes = $6, buffer_after_minutes = $7, slot_step_minutes = $8,
	minimum_notice_minutes = $9, active = $10, updated_at = $11
WHERE id = $1`

func (q *Queries) UpdateEventType(ctx context.Context, db DBTX, arg EventType) (int64, error) {
	tag, err := db.Exec(ctx, updateEventType,
		arg.ID, arg.Title, arg.Slug, arg.Description, arg.DurationMinutes,
		arg.BufferBeforeMinutes, arg.BufferAfterMinutes, arg.SlotStepMinutes,
		arg.MinimumNoticeMinutes, arg.Active, arg.UpdatedAt)
	return tag.RowsAffected(), err
}

const deleteEventType = `DELETE FROM event_types WHERE id = $1`

func (q *Queries) DeleteEventType(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteEventType, id)
	return tag.RowsAffected(), err
}
