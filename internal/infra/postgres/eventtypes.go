package postgres

import (
	"context"
	"log/slog"

	"slotbook/internal/domain/eventtype"
	"slotbook/internal/infra"
	"slotbook/internal/infra/postgres/pgq"
	"slotbook/internal/infra/uow"
	"slotbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EventTypeQueries interface {
	CreateEventType(ctx context.Context, db pgq.DBTX, arg pgq.EventType) error
	GetEventTypeByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.EventType, error)
	GetEventTypeBySlug(ctx context.Context, db pgq.DBTX, arg pgq.GetEventTypeBySlugParams) (pgq.EventType, error)
	ListEventTypesByHost(ctx context.Context, db pgq.DBTX, hostID uuid.UUID) ([]pgq.EventType, error)
	UpdateEventType(ctx context.Context, db pgq.DBTX, arg pgq.EventType) (int64, error)
	DeleteEventType(ctx context.Context, db pgq.DBTX, id uuid.UUID) (int64, error)
}

type EventTypeStore struct {
	queries EventTypeQueries
	uow     *uow.PostgresUoW
	logger  *slog.Logger
}

func NewEventTypeStore(queries *pgq.Queries, u *uow.PostgresUoW, logger *slog.Logger) *EventTypeStore {
	return &EventTypeStore{queries: queries, uow: u, logger: logger}
}

func (s *EventTypeStore) Create(ctx context.Context, et *eventtype.EventType) error {
	err := s.queries.CreateEventType(ctx, s.uow.DB(), eventTypeToRow(et))
	return mapErr(s.logger, "failed to create event type", err)
}

func (s *EventTypeStore) Get(ctx context.Context, id uuid.UUID) (*eventtype.EventType, error) {
	row, err := s.queries.GetEventTypeByID(ctx, s.uow.DB(), id)
	if err != nil {
		return nil, mapErr(s.logger, "event type not found", err)
	}
	return eventTypeFromRow(row), nil
}

func (s *EventTypeStore) GetBySlug(ctx context.Context, hostID uuid.UUID, slug string) (*eventtype.EventType, error) {
	row, err := s.queries.GetEventTypeBySlug(ctx, s.uow.DB(), pgq.GetEventTypeBySlugParams{HostID: hostID, Slug: slug})
	if err != nil {
		return nil, mapErr(s.logger, "event type not found", err)
	}
	return eventTypeFromRow(row), nil
}

func (s *EventTypeStore) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*eventtype.EventType, error) {
	rows, err := s.queries.ListEventTypesByHost(ctx, s.uow.DB(), hostID)
	if err != nil {
		return nil, mapErr(s.logger, "failed to list event types", err)
	}
	out := make([]*eventtype.EventType, len(rows))
	for i, row := range rows {
		out[i] = eventTypeFromRow(row)
	}
	return out, nil
}

func (s *EventTypeStore) Update(ctx context.Context, et *eventtype.EventType) error {
	n, err := s.queries.UpdateEventType(ctx, s.uow.DB(), eventTypeToRow(et))
	if err != nil {
		return mapErr(s.logger, "failed to update event type", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "event type not found", nil)
	}
	return nil
}

func (s *EventTypeStore) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.queries.DeleteEventType(ctx, s.uow.DB(), id)
	if err != nil {
		return mapErr(s.logger, "failed to delete event type", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "event type not found", nil)
	}
	return nil
}

func eventTypeToRow(et *eventtype.EventType) pgq.EventType {
	p := et.Params()
	return pgq.EventType{
		ID:                   et.ID(),
		HostID:               et.HostID(),
		Title:                p.Title,
		Slug:                 p.Slug,
		Description:          p.Description,
		DurationMinutes:      pgconv.Minutes(p.Duration),
		BufferBeforeMinutes:  pgconv.Minutes(p.BufferBefore),
		BufferAfterMinutes:   pgconv.Minutes(p.BufferAfter),
		SlotStepMinutes:      pgconv.Minutes(p.SlotStep),
		MinimumNoticeMinutes: pgconv.Minutes(p.MinimumNotice),
		Active:               p.Active,
		CreatedAt:            et.CreatedAt(),
		UpdatedAt:            et.UpdatedAt(),
	}
}

func eventTypeFromRow(row pgq.EventType) *eventtype.EventType {
	return eventtype.Reconstruct(row.ID, row.HostID, eventtype.Params{
		Title:         row.Title,
		Slug:          row.Slug,
		Description:   row.Description,
		Duration:      pgconv.Duration(row.DurationMinutes),
		BufferBefore:  pgconv.Duration(row.BufferBeforeMinutes),
		BufferAfter:   pgconv.Duration(row.BufferAfterMinutes),
		SlotStep:      pgconv.Duration(row.SlotStepMinutes),
		MinimumNotice: pgconv.Duration(row.MinimumNoticeMinutes),
		Active:        row.Active,
	}, row.CreatedAt.UTC(), row.UpdatedAt.UTC())
}
