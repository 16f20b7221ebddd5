package db

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqliteSchema mirrors migrations/001_clinic.sql for the embedded backend.
// Cascades are not declared here: the sqlite stores delete dependents
// themselves inside the parent's delete transaction.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS specialty (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL CHECK (name <> '' AND length(name) <= 100),
    description TEXT
);

CREATE TABLE IF NOT EXISTS doctor (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name   TEXT NOT NULL CHECK (first_name <> '' AND length(first_name) <= 100),
    last_name    TEXT NOT NULL CHECK (last_name <> '' AND length(last_name) <= 100),
    phone        TEXT CHECK (length(phone) <= 20),
    specialty_id INTEGER NOT NULL REFERENCES specialty(id)
);

CREATE TABLE IF NOT EXISTS patient (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name  TEXT NOT NULL CHECK (first_name <> '' AND length(first_name) <= 100),
    last_name   TEXT NOT NULL CHECK (last_name <> '' AND length(last_name) <= 100),
    age         INTEGER NOT NULL CHECK (age >= 0),
    national_id TEXT NOT NULL UNIQUE CHECK (national_id <> '' AND length(national_id) <= 10),
    phone       TEXT CHECK (length(phone) <= 20)
);

CREATE TABLE IF NOT EXISTS history (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT,
    date        DATE NOT NULL,
    patient_id  INTEGER NOT NULL UNIQUE REFERENCES patient(id)
);

CREATE TABLE IF NOT EXISTS consultation (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    occurred_at DATETIME NOT NULL,
    reason      TEXT NOT NULL CHECK (reason <> ''),
    diagnosis   TEXT,
    patient_id  INTEGER NOT NULL REFERENCES patient(id),
    doctor_id   INTEGER REFERENCES doctor(id)
);

CREATE TABLE IF NOT EXISTS prescription (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    medication      TEXT CHECK (length(medication) <= 200),
    dosage          TEXT CHECK (length(dosage) <= 200),
    consultation_id INTEGER NOT NULL UNIQUE REFERENCES consultation(id)
);

CREATE INDEX IF NOT EXISTS idx_doctor_specialty ON doctor(specialty_id);
CREATE INDEX IF NOT EXISTS idx_consultation_patient ON consultation(patient_id);
CREATE INDEX IF NOT EXISTS idx_consultation_doctor ON consultation(doctor_id);
`

// OpenSQLite opens the embedded store at path (":memory:" for a throwaway
// database) with foreign keys enforced and applies the clinic schema.
// Access goes through a single connection so an in-memory database survives
// for the life of the handle.
func OpenSQLite(path string, debug bool) (*gorm.DB, error) {
	dsn := sqliteDSN(path)

	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := gdb.Exec(sqliteSchema).Error; err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}
	return gdb, nil
}

func sqliteDSN(path string) string {
	if path == "" || path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return "file:" + path + "?_foreign_keys=on&_journal_mode=WAL"
}

// PingSQLite checks the embedded store is reachable.
func PingSQLite(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CloseSQLite releases the underlying connection.
func CloseSQLite(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
