package patient

import (
	"context"

	"gorm.io/gorm"

	"github.com/clinic/clinic/internal/platform/db"
)

type patientRepoSQLite struct{ db *gorm.DB }

func NewPatientRepoSQLite(gdb *gorm.DB) PatientRepository {
	return &patientRepoSQLite{db: gdb}
}

func (r *patientRepoSQLite) Save(ctx context.Context, p *Patient) error {
	tx := r.db.WithContext(ctx)
	if p.ID == 0 {
		return db.TranslateSQLite(tx.Create(p).Error)
	}
	res := tx.Model(p).Select("first_name", "last_name", "age", "national_id", "phone").Updates(p)
	if res.Error != nil {
		return db.TranslateSQLite(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *patientRepoSQLite) FindByID(ctx context.Context, id int64) (*Patient, error) {
	var p Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, db.TranslateSQLite(err)
	}
	return &p, nil
}

func (r *patientRepoSQLite) FindAll(ctx context.Context) ([]*Patient, error) {
	var items []*Patient
	err := r.db.WithContext(ctx).Order("id").Find(&items).Error
	return items, db.TranslateSQLite(err)
}

func (r *patientRepoSQLite) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Patient{}).Where("id = ?", id).Count(&n).Error
	return n > 0, db.TranslateSQLite(err)
}

// DeleteByID removes the patient's history with it. A patient with
// consultations is rejected by the consultation.patient_id reference and
// the history delete is rolled back.
func (r *patientRepoSQLite) DeleteByID(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM history WHERE patient_id = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&Patient{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return db.ErrNotFound
		}
		return nil
	})
	return db.TranslateSQLite(err)
}
