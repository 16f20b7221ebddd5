package doctor

import (
	"context"

	"gorm.io/gorm"

	"github.com/clinic/clinic/internal/platform/db"
)

type doctorRepoSQLite struct{ db *gorm.DB }

// NewDoctorRepoSQLite stores doctors in the embedded SQLite database.
func NewDoctorRepoSQLite(gdb *gorm.DB) DoctorRepository {
	return &doctorRepoSQLite{db: gdb}
}

func (r *doctorRepoSQLite) Save(ctx context.Context, d *Doctor) error {
	tx := r.db.WithContext(ctx)
	if d.ID == 0 {
		return db.TranslateSQLite(tx.Create(d).Error)
	}
	res := tx.Model(d).Select("first_name", "last_name", "phone", "specialty_id").Updates(d)
	if res.Error != nil {
		return db.TranslateSQLite(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *doctorRepoSQLite) FindByID(ctx context.Context, id int64) (*Doctor, error) {
	var d Doctor
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, db.TranslateSQLite(err)
	}
	return &d, nil
}

func (r *doctorRepoSQLite) FindAll(ctx context.Context) ([]*Doctor, error) {
	var items []*Doctor
	err := r.db.WithContext(ctx).Order("id").Find(&items).Error
	return items, db.TranslateSQLite(err)
}

func (r *doctorRepoSQLite) FindBySpecialtyID(ctx context.Context, specialtyID int64) ([]*Doctor, error) {
	var items []*Doctor
	err := r.db.WithContext(ctx).Where("specialty_id = ?", specialtyID).Order("id").Find(&items).Error
	return items, db.TranslateSQLite(err)
}

func (r *doctorRepoSQLite) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Doctor{}).Where("id = ?", id).Count(&n).Error
	return n > 0, db.TranslateSQLite(err)
}

// DeleteByID detaches the doctor's consultations before removing the doctor.
func (r *doctorRepoSQLite) DeleteByID(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`UPDATE consultation SET doctor_id = NULL WHERE doctor_id = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&Doctor{}, id)
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
