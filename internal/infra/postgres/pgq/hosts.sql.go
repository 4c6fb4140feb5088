package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const hostColumns = `id, username, name, email, timezone, created_at, updated_at`

func scanHost(row pgx.Row) (Host, error) {
	var h Host
	err := row.Scan(&h.ID, &h.Username, &h.Name, &h.Email, &h.Timezone, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

const createHost = `
INSERT INTO hosts (` + hostColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) CreateHost(ctx context.Context, db DBTX, arg Host) error {
	_, err := db.Exec(ctx, createHost,
		arg.ID, arg.Username, arg.Name, arg.Email, arg.Timezone, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const getHostByID = `SELECT ` + hostColumns + ` FROM hosts WHERE id = $1`

func (q *Queries) GetHostByID(ctx context.Context, db DBTX, id uuid.UUID) (Host, error) {
	return scanHost(db.QueryRow(ctx, getHostByID, id))
}

const getHostByUsername = `SELECT ` + hostColumns + ` FROM hosts WHERE username = $1`

func (q *Queries) GetHostByUsername(ctx context.Context, db DBTX, username string) (Host, error) {
	return scanHost(db.QueryRow(ctx, getHostByUsername, username))
}

const updateHost = `
UPDATE hosts SET name = $2, email = $3, timezone = $4, updated_at = $5
WHERE id = $1`

// UpdateHost returns the number of rows changed.
func (q *Queries) UpdateHost(ctx context.Context, db DBTX, arg Host) (int64, error) {
	tag, err := db.Exec(ctx, updateHost, arg.ID, arg.Name, arg.Email, arg.Timezone, arg.UpdatedAt)
	return tag.RowsAffected(), err
}
