package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("not found")

// StorageError wraps an unexpected database failure so callers can tell it
// apart from domain conditions like conflicts or missing rows. It is never
// retried here; the caller decides whether to rerun the whole operation.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage: " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err is (or wraps) a storage failure.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// WrapStorage classifies err as a storage failure. nil and already
// classified errors pass through unchanged.
func WrapStorage(err error) error {
	if err == nil || errors.Is(err, ErrNotFound) || IsStorageError(err) {
		return err
	}
	return &StorageError{Err: err}
}

// NotFoundOr maps pgx.ErrNoRows to ErrNotFound and wraps everything else as
// a storage failure, so callers never depend on pgx directly.
func NotFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return WrapStorage(err)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique or exclusion
// constraint violation. The booking path maps it to a conflict.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}
