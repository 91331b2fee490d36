package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestNotFoundOr(t *testing.T) {
	if err := NotFoundOr(pgx.ErrNoRows); !errors.Is(err, ErrNotFound) {
		t.Errorf("ErrNoRows: got %v, want ErrNotFound", err)
	}
	if err := NotFoundOr(nil); err != nil {
		t.Errorf("nil: got %v", err)
	}

	boom := errors.New("connection reset")
	err := NotFoundOr(boom)
	if !IsStorageError(err) {
		t.Errorf("unexpected failure should classify as storage, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Error("wrapped error should unwrap to the original")
	}
}

func TestWrapStorage_Idempotent(t *testing.T) {
	if WrapStorage(nil) != nil {
		t.Error("nil should pass through")
	}
	if err := WrapStorage(ErrNotFound); !errors.Is(err, ErrNotFound) || IsStorageError(err) {
		t.Errorf("ErrNotFound should pass through unwrapped, got %v", err)
	}

	once := WrapStorage(errors.New("boom"))
	twice := WrapStorage(once)
	if twice != once {
		t.Error("already classified errors should not be wrapped again")
	}
	if !IsStorageError(fmt.Errorf("op: %w", once)) {
		t.Error("IsStorageError should see through fmt.Errorf wrapping")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	for _, code := range []string{"23505", "23P01"} {
		if !IsUniqueViolation(&pgconn.PgError{Code: code}) {
			t.Errorf("code %s should count as a unique violation", code)
		}
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation is not a unique violation")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Error("plain errors are not unique violations")
	}
}
