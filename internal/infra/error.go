package infra

import (
	"errors"
	"log/slog"

	"slotbook/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// Is maps storage kinds onto the usecase error taxonomy.
func (e RepositoryError) Is(target error) bool {
	switch e.Kind {
	case KindNotFound:
		return target == errs.ErrNotFound
	case KindConflict:
		return target == errs.ErrConflict
	case KindTimeout:
		return target == errs.ErrReservationTimeout
	case KindDBFailure:
		return target == errs.ErrDatabaseOperationFailed
	default:
		return false
	}
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	switch kind {
	case KindDBFailure:
		slogger.Error("Repository error: "+msg, logArgs...)
	case KindNotFound:
		slogger.Debug("Repository error: "+msg, logArgs...)
	default:
		slogger.Warn("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindTimeout            RepositoryErrorKind = "TIMEOUT"
)
