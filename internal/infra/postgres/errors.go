// Package postgres implements the store ports on PostgreSQL through pgx.
// Overlap between active bookings is enforced by the bookings_no_overlap
// exclusion constraint; the ledger additionally takes a per-host advisory
// lock so conflicts surface as clean errors instead of constraint races.
package postgres

import (
	"context"
	"errors"
	"log/slog"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrExclusionViolation  = "23P01"
	pgErrLockNotAvailable    = "55P03"
	pgErrQueryCanceled       = "57014"
)

// mapErr translates driver errors into repository error kinds.
func mapErr(logger *slog.Logger, msg string, err error) error {
	if err == nil {
		return nil
	}
	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) {
		return err
	}
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(logger, infra.KindNotFound, msg, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return infra.WrapRepoErr(logger, infra.KindTimeout, msg, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return infra.WrapRepoErr(logger, infra.KindDuplicateKey, msg, err)
		case pgErrForeignKeyViolation:
			return infra.WrapRepoErr(logger, infra.KindForeignKeyViolated, msg, err)
		case pgErrExclusionViolation:
			return infra.WrapRepoErr(logger, infra.KindConflict, msg, err)
		case pgErrLockNotAvailable, pgErrQueryCanceled:
			return infra.WrapRepoErr(logger, infra.KindTimeout, msg, err)
		}
	}
	return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
}
