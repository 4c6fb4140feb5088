package pgq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BusyWindowParams struct {
	HostID uuid.UUID
	Start  time.Time
	End    time.Time
}

const deleteBusyBlocks = `
DELETE FROM busy_blocks
WHERE host_id = $1 AND during && tstzrange($2, $3, '[)')`

func (q *Queries) DeleteBusyBlocks(ctx context.Context, db DBTX, arg BusyWindowParams) error {
	_, err := db.Exec(ctx, deleteBusyBlocks, arg.HostID, arg.Start, arg.End)
	return err
}

const insertBusyBlock = `INSERT INTO busy_blocks (host_id, during) VALUES ($1, tstzrange($2, $3, '[)'))`

func (q *Queries) InsertBusyBlocks(ctx context.Context, db DBTX, hostID uuid.UUID, blocks []BusyBlock) error {
	batch := &pgx.Batch{}
	for _, b := range blocks {
		batch.Queue(insertBusyBlock, hostID, b.Start, b.End)
	}
	return execBatch(ctx, db, batch)
}

const listBusyBlocks = `
SELECT lower(during), upper(during)
FROM busy_blocks
WHERE host_id = $1 AND during && tstzrange($2, $3, '[)')
ORDER BY lower(during)`

func (q *Queries) ListBusyBlocks(ctx context.Context, db DBTX, arg BusyWindowParams) ([]BusyBlock, error) {
	rows, err := db.Query(ctx, listBusyBlocks, arg.HostID, arg.Start, arg.End)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (BusyBlock, error) {
		var b BusyBlock
		err := row.Scan(&b.Start, &b.End)
		return b, err
	})
}
