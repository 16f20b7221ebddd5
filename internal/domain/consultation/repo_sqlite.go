package consultation

import (
	"context"

	"gorm.io/gorm"

	"github.com/clinic/clinic/internal/platform/db"
)

type consultationRepoSQLite struct{ db *gorm.DB }

func NewConsultationRepoSQLite(gdb *gorm.DB) ConsultationRepository {
	return &consultationRepoSQLite{db: gdb}
}

func (r *consultationRepoSQLite) Save(ctx context.Context, c *Consultation) error {
	if err := c.check(); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx)
	if c.ID == 0 {
		return db.TranslateSQLite(tx.Create(c).Error)
	}
	res := tx.Model(c).Select("occurred_at", "reason", "diagnosis", "patient_id", "doctor_id").Updates(c)
	if res.Error != nil {
		return db.TranslateSQLite(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *consultationRepoSQLite) FindByID(ctx context.Context, id int64) (*Consultation, error) {
	var c Consultation
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, db.TranslateSQLite(err)
	}
	return &c, nil
}

func (r *consultationRepoSQLite) FindAll(ctx context.Context) ([]*Consultation, error) {
	var items []*Consultation
	err := r.db.WithContext(ctx).Order("id").Find(&items).Error
	return items, db.TranslateSQLite(err)
}

func (r *consultationRepoSQLite) FindByPatientID(ctx context.Context, patientID int64) ([]*Consultation, error) {
	var items []*Consultation
	err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Order("occurred_at, id").Find(&items).Error
	return items, db.TranslateSQLite(err)
}

func (r *consultationRepoSQLite) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Consultation{}).Where("id = ?", id).Count(&n).Error
	return n > 0, db.TranslateSQLite(err)
}

// DeleteByID removes the consultation's prescription in the same transaction.
func (r *consultationRepoSQLite) DeleteByID(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM prescription WHERE consultation_id = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&Consultation{}, id)
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
