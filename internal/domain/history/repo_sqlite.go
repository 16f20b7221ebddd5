package history

import (
	"context"

	"gorm.io/gorm"

	"github.com/clinic/clinic/internal/platform/db"
)

type historyRepoSQLite struct{ db *gorm.DB }

func NewHistoryRepoSQLite(gdb *gorm.DB) HistoryRepository {
	return &historyRepoSQLite{db: gdb}
}

func (r *historyRepoSQLite) Save(ctx context.Context, h *History) error {
	if err := h.check(); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx)
	if h.ID == 0 {
		return db.TranslateSQLite(tx.Create(h).Error)
	}
	res := tx.Model(h).Select("description", "date", "patient_id").Updates(h)
	if res.Error != nil {
		return db.TranslateSQLite(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *historyRepoSQLite) FindByID(ctx context.Context, id int64) (*History, error) {
	var h History
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, db.TranslateSQLite(err)
	}
	return &h, nil
}

func (r *historyRepoSQLite) FindByPatientID(ctx context.Context, patientID int64) (*History, error) {
	var h History
	if err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).First(&h).Error; err != nil {
		return nil, db.TranslateSQLite(err)
	}
	return &h, nil
}

func (r *historyRepoSQLite) FindAll(ctx context.Context) ([]*History, error) {
	var items []*History
	err := r.db.WithContext(ctx).Order("id").Find(&items).Error
	return items, db.TranslateSQLite(err)
}

func (r *historyRepoSQLite) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&History{}).Where("id = ?", id).Count(&n).Error
	return n > 0, db.TranslateSQLite(err)
}

func (r *historyRepoSQLite) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&History{}, id)
	if res.Error != nil {
		return db.TranslateSQLite(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}
