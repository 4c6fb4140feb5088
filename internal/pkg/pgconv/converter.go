package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time.UTC()
	return &t
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// Minutes converts a whole-minute duration to an integer column value.
func Minutes(d time.Duration) int32 {
	return int32(d / time.Minute) // #nosec G115 -- durations are validated to a few days at most
}

func Duration(minutes int32) time.Duration {
	return time.Duration(minutes) * time.Minute
}

func DateFromPgtype(pd pgtype.Date) (year int, month time.Month, day int) {
	return pd.Time.Year(), pd.Time.Month(), pd.Time.Day()
}

func DateToPgtype(year int, month time.Month, day int) pgtype.Date {
	return pgtype.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
