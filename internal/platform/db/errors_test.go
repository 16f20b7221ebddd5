package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestTranslatePG(t *testing.T) {
	if TranslatePG(nil) != nil {
		t.Error("expected nil for nil error")
	}
	if err := TranslatePG(fmt.Errorf("scan: %w", pgx.ErrNoRows)); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	unique := &pgconn.PgError{Code: "23505", ConstraintName: "patient_national_id_key"}
	err := TranslatePG(unique)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
	var ce *ConstraintError
	if !errors.As(err, &ce) || ce.Constraint != "patient_national_id_key" {
		t.Errorf("expected constraint name, got %+v", ce)
	}

	notNull := TranslatePG(&pgconn.PgError{Code: "23502", ColumnName: "specialty_id"})
	if !errors.As(notNull, &ce) || ce.Constraint != "specialty_id" {
		t.Errorf("expected column name fallback, got %v", notNull)
	}

	other := &pgconn.PgError{Code: "42P01"}
	if err := TranslatePG(other); errors.Is(err, ErrConstraintViolation) || err != error(other) {
		t.Errorf("expected undefined_table to pass through, got %v", err)
	}
}

func TestTranslateSQLite(t *testing.T) {
	if TranslateSQLite(nil) != nil {
		t.Error("expected nil for nil error")
	}
	if err := TranslateSQLite(gorm.ErrRecordNotFound); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	gdb, err := OpenSQLite(":memory:", false)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer CloseSQLite(gdb)

	insert := `INSERT INTO patient (first_name, last_name, age, national_id) VALUES ('A', 'B', 1, '0102030405')`
	if err := gdb.Exec(insert).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err = TranslateSQLite(gdb.Exec(insert).Error)
	var ce *ConstraintError
	if !errors.As(err, &ce) || ce.Constraint != "patient.national_id" {
		t.Fatalf("expected unique violation on patient.national_id, got %v", err)
	}

	err = TranslateSQLite(gdb.Exec(`INSERT INTO doctor (first_name, last_name, specialty_id) VALUES ('A', 'B', 99)`).Error)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Errorf("expected foreign key violation, got %v", err)
	}
}

func TestViolation(t *testing.T) {
	err := fmt.Errorf("create consultation: %w", Violation("consultation_doctor_id", "doctor is required"))
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("violation must not match ErrNotFound")
	}
	want := "create consultation: constraint violation (consultation_doctor_id): doctor is required"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
