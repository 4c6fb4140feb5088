package postgres

import (
	"context"
	_ "embed"
	"log/slog"

	"slotbook/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

// Migrate applies the idempotent schema. Safe to run on every deploy.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return errs.Wrap(err, "apply schema")
	}
	logger.Info("schema applied")
	return nil
}
