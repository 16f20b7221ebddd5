package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means an id did not resolve to a persisted record.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation means a write broke a uniqueness, required
	// reference or column rule enforced by the store.
	ErrConstraintViolation = errors.New("constraint violation")
)

// ConstraintError is returned by stores when the database rejects a write.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("constraint violation: %v", e.Err)
	}
	return fmt.Sprintf("constraint violation (%s): %v", e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraintViolation }

// Violation builds a ConstraintError for a rule checked in Go before the
// statement reaches the database.
func Violation(constraint, msg string) error {
	return &ConstraintError{Constraint: constraint, Err: errors.New(msg)}
}

// PostgreSQL SQLSTATE codes treated as constraint violations.
var pgConstraintCodes = map[string]bool{
	"23502": true, // not_null_violation
	"23503": true, // foreign_key_violation
	"23505": true, // unique_violation
	"23514": true, // check_violation
	"22001": true, // string_data_right_truncation
}

// TranslatePG maps pgx errors onto ErrNotFound and ConstraintError. Other
// errors are returned unchanged.
func TranslatePG(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgConstraintCodes[pgErr.Code] {
		name := pgErr.ConstraintName
		if name == "" {
			name = pgErr.ColumnName
		}
		return &ConstraintError{Constraint: name, Err: err}
	}
	return err
}

// TranslateSQLite maps gorm/sqlite errors onto ErrNotFound and
// ConstraintError. Other errors are returned unchanged.
func TranslateSQLite(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var sqlErr sqlite3.Error
	if errors.As(err, &sqlErr) && sqlErr.Code == sqlite3.ErrConstraint {
		return &ConstraintError{Constraint: sqliteConstraintName(sqlErr.Error()), Err: err}
	}
	return err
}

// sqliteConstraintName extracts "patient.national_id" from messages such as
// "UNIQUE constraint failed: patient.national_id".
func sqliteConstraintName(msg string) string {
	if _, after, ok := strings.Cut(msg, "failed: "); ok {
		return after
	}
	return ""
}
