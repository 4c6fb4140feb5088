package postgres

import (
	"context"
	"log/slog"

	"slotbook/internal/domain/host"
	"slotbook/internal/infra"
	"slotbook/internal/infra/postgres/pgq"
	"slotbook/internal/infra/uow"

	"github.com/google/uuid"
)

type HostQueries interface {
	CreateHost(ctx context.Context, db pgq.DBTX, arg pgq.Host) error
	GetHostByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Host, error)
	GetHostByUsername(ctx context.Context, db pgq.DBTX, username string) (pgq.Host, error)
	UpdateHost(ctx context.Context, db pgq.DBTX, arg pgq.Host) (int64, error)
}

type HostStore struct {
	queries HostQueries
	uow     *uow.PostgresUoW
	logger  *slog.Logger
}

func NewHostStore(queries *pgq.Queries, u *uow.PostgresUoW, logger *slog.Logger) *HostStore {
	return &HostStore{queries: queries, uow: u, logger: logger}
}

func (s *HostStore) Create(ctx context.Context, h *host.Host) error {
	err := s.queries.CreateHost(ctx, s.uow.DB(), hostToRow(h))
	return mapErr(s.logger, "failed to create host", err)
}

func (s *HostStore) Get(ctx context.Context, id uuid.UUID) (*host.Host, error) {
	row, err := s.queries.GetHostByID(ctx, s.uow.DB(), id)
	if err != nil {
		return nil, mapErr(s.logger, "host not found", err)
	}
	return s.toDomain(row)
}

func (s *HostStore) GetByUsername(ctx context.Context, username string) (*host.Host, error) {
	row, err := s.queries.GetHostByUsername(ctx, s.uow.DB(), username)
	if err != nil {
		return nil, mapErr(s.logger, "host not found", err)
	}
	return s.toDomain(row)
}

func (s *HostStore) Update(ctx context.Context, h *host.Host) error {
	n, err := s.queries.UpdateHost(ctx, s.uow.DB(), hostToRow(h))
	if err != nil {
		return mapErr(s.logger, "failed to update host", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "host not found", nil)
	}
	return nil
}

func (s *HostStore) toDomain(row pgq.Host) (*host.Host, error) {
	h, err := host.Reconstruct(row.ID, row.Username, row.Name, row.Email, row.Timezone, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "stored host is invalid", err)
	}
	return h, nil
}

func hostToRow(h *host.Host) pgq.Host {
	return pgq.Host{
		ID:        h.ID(),
		Username:  h.Username(),
		Name:      h.Name(),
		Email:     h.Email(),
		Timezone:  h.Timezone(),
		CreatedAt: h.CreatedAt(),
		UpdatedAt: h.UpdatedAt(),
	}
}
