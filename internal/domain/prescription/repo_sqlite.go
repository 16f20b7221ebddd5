package prescription

import (
	"context"

	"gorm.io/gorm"

	"github.com/clinic/clinic/internal/platform/db"
)

type prescriptionRepoSQLite struct{ db *gorm.DB }

func NewPrescriptionRepoSQLite(gdb *gorm.DB) PrescriptionRepository {
	return &prescriptionRepoSQLite{db: gdb}
}

func (r *prescriptionRepoSQLite) Save(ctx context.Context, p *Prescription) error {
	tx := r.db.WithContext(ctx)
	if p.ID == 0 {
		return db.TranslateSQLite(tx.Create(p).Error)
	}
	res := tx.Model(p).Select("medication", "dosage", "consultation_id").Updates(p)
	if res.Error != nil {
		return db.TranslateSQLite(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *prescriptionRepoSQLite) FindByID(ctx context.Context, id int64) (*Prescription, error) {
	var p Prescription
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, db.TranslateSQLite(err)
	}
	return &p, nil
}

func (r *prescriptionRepoSQLite) FindByConsultationID(ctx context.Context, consultationID int64) (*Prescription, error) {
	var p Prescription
	if err := r.db.WithContext(ctx).Where("consultation_id = ?", consultationID).First(&p).Error; err != nil {
		return nil, db.TranslateSQLite(err)
	}
	return &p, nil
}

func (r *prescriptionRepoSQLite) FindAll(ctx context.Context) ([]*Prescription, error) {
	var items []*Prescription
	err := r.db.WithContext(ctx).Order("id").Find(&items).Error
	return items, db.TranslateSQLite(err)
}

func (r *prescriptionRepoSQLite) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Prescription{}).Where("id = ?", id).Count(&n).Error
	return n > 0, db.TranslateSQLite(err)
}

func (r *prescriptionRepoSQLite) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Prescription{}, id)
	if res.Error != nil {
		return db.TranslateSQLite(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}
