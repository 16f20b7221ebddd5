package specialty

import (
	"context"

	"gorm.io/gorm"

	"github.com/clinic/clinic/internal/platform/db"
)

type specialtyRepoSQLite struct{ db *gorm.DB }

// NewSpecialtyRepoSQLite stores specialties in the embedded SQLite database.
// DeleteByID removes the specialty's doctors in the same transaction and
// detaches their consultations.
func NewSpecialtyRepoSQLite(gdb *gorm.DB) SpecialtyRepository {
	return &specialtyRepoSQLite{db: gdb}
}

func (r *specialtyRepoSQLite) Save(ctx context.Context, s *Specialty) error {
	tx := r.db.WithContext(ctx)
	if s.ID == 0 {
		return db.TranslateSQLite(tx.Create(s).Error)
	}
	res := tx.Model(s).Select("name", "description").Updates(s)
	if res.Error != nil {
		return db.TranslateSQLite(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *specialtyRepoSQLite) FindByID(ctx context.Context, id int64) (*Specialty, error) {
	var s Specialty
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, db.TranslateSQLite(err)
	}
	return &s, nil
}

func (r *specialtyRepoSQLite) FindAll(ctx context.Context) ([]*Specialty, error) {
	var items []*Specialty
	err := r.db.WithContext(ctx).Order("id").Find(&items).Error
	return items, db.TranslateSQLite(err)
}

func (r *specialtyRepoSQLite) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Specialty{}).Where("id = ?", id).Count(&n).Error
	return n > 0, db.TranslateSQLite(err)
}

func (r *specialtyRepoSQLite) DeleteByID(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`UPDATE consultation SET doctor_id = NULL
			WHERE doctor_id IN (SELECT id FROM doctor WHERE specialty_id = ?)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM doctor WHERE specialty_id = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&Specialty{}, id)
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
