package postgres

import (
	"context"
	"log/slog"

	"slotbook/internal/domain/timerange"
	"slotbook/internal/infra/postgres/pgq"
	"slotbook/internal/infra/uow"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BusyQueries interface {
	DeleteBusyBlocks(ctx context.Context, db pgq.DBTX, arg pgq.BusyWindowParams) error
	InsertBusyBlocks(ctx context.Context, db pgq.DBTX, hostID uuid.UUID, blocks []pgq.BusyBlock) error
	ListBusyBlocks(ctx context.Context, db pgq.DBTX, arg pgq.BusyWindowParams) ([]pgq.BusyBlock, error)
}

type BusyTimeStore struct {
	queries BusyQueries
	uow     *uow.PostgresUoW
	logger  *slog.Logger
}

func NewBusyTimeStore(queries *pgq.Queries, u *uow.PostgresUoW, logger *slog.Logger) *BusyTimeStore {
	return &BusyTimeStore{queries: queries, uow: u, logger: logger}
}

// ReplaceBusy drops every block overlapping window and stores blocks in its place.
func (s *BusyTimeStore) ReplaceBusy(ctx context.Context, hostID uuid.UUID, window timerange.Range, blocks []timerange.Range) error {
	err := s.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.queries.DeleteBusyBlocks(ctx, tx, pgq.BusyWindowParams{
			HostID: hostID, Start: window.Start, End: window.End,
		}); err != nil {
			return err
		}
		merged := timerange.Normalize(blocks)
		rows := make([]pgq.BusyBlock, len(merged))
		for i, b := range merged {
			rows[i] = pgq.BusyBlock{Start: b.Start, End: b.End}
		}
		return s.queries.InsertBusyBlocks(ctx, tx, hostID, rows)
	})
	return mapErr(s.logger, "failed to replace busy blocks", err)
}

func (s *BusyTimeStore) Busy(ctx context.Context, hostID uuid.UUID, window timerange.Range) ([]timerange.Range, error) {
	rows, err := s.queries.ListBusyBlocks(ctx, s.uow.DB(), pgq.BusyWindowParams{
		HostID: hostID, Start: window.Start, End: window.End,
	})
	if err != nil {
		return nil, mapErr(s.logger, "failed to load busy blocks", err)
	}
	out := make([]timerange.Range, len(rows))
	for i, r := range rows {
		out[i] = timerange.Range{Start: r.Start.UTC(), End: r.End.UTC()}
	}
	return timerange.Normalize(out), nil
}
