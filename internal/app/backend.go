package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/clinic/clinic/internal/config"
	"github.com/clinic/clinic/internal/domain/consultation"
	"github.com/clinic/clinic/internal/domain/doctor"
	"github.com/clinic/clinic/internal/domain/history"
	"github.com/clinic/clinic/internal/domain/patient"
	"github.com/clinic/clinic/internal/domain/prescription"
	"github.com/clinic/clinic/internal/domain/specialty"
	"github.com/clinic/clinic/internal/platform/db"
)

// Stores holds one store per entity, all backed by the same database.
type Stores struct {
	Specialties   specialty.SpecialtyRepository
	Doctors       doctor.DoctorRepository
	Patients      patient.PatientRepository
	Histories     history.HistoryRepository
	Consultations consultation.ConsultationRepository
	Prescriptions prescription.PrescriptionRepository
}

// Backend is an opened database together with its stores.
type Backend struct {
	Driver string
	Stores *Stores
	Ping   db.Pinger
	Stats  func() *db.PoolStats
	close  func()
}

func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// NewPostgresBackend builds the stores on a pgx pool. Closing the backend
// closes the pool.
func NewPostgresBackend(pool *pgxpool.Pool) *Backend {
	return &Backend{
		Driver: config.DriverPostgres,
		Stores: &Stores{
			Specialties:   specialty.NewSpecialtyRepoPG(pool),
			Doctors:       doctor.NewDoctorRepoPG(pool),
			Patients:      patient.NewPatientRepoPG(pool),
			Histories:     history.NewHistoryRepoPG(pool),
			Consultations: consultation.NewConsultationRepoPG(pool),
			Prescriptions: prescription.NewPrescriptionRepoPG(pool),
		},
		Ping:  db.PoolPinger(pool),
		Stats: func() *db.PoolStats { return db.GetPoolStats(pool) },
		close: pool.Close,
	}
}

// NewSQLiteBackend builds the stores on an opened SQLite database.
func NewSQLiteBackend(gdb *gorm.DB) *Backend {
	return &Backend{
		Driver: config.DriverSQLite,
		Stores: &Stores{
			Specialties:   specialty.NewSpecialtyRepoSQLite(gdb),
			Doctors:       doctor.NewDoctorRepoSQLite(gdb),
			Patients:      patient.NewPatientRepoSQLite(gdb),
			Histories:     history.NewHistoryRepoSQLite(gdb),
			Consultations: consultation.NewConsultationRepoSQLite(gdb),
			Prescriptions: prescription.NewPrescriptionRepoSQLite(gdb),
		},
		Ping:  func(ctx context.Context) error { return db.PingSQLite(ctx, gdb) },
		close: func() { _ = db.CloseSQLite(gdb) },
	}
}

// OpenBackend connects to the store selected by cfg.StoreDriver.
func OpenBackend(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Backend, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		gdb, err := db.OpenSQLite(cfg.SQLitePath, logger.GetLevel() <= zerolog.DebugLevel)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.SQLitePath).Msg("opened sqlite store")
		return NewSQLiteBackend(gdb), nil
	case config.DriverPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, err
		}
		logger.Info().Msg("connected to database")
		return NewPostgresBackend(pool), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
