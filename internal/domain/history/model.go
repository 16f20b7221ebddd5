package history

import (
	"github.com/clinic/clinic/internal/domain/patient"
	"github.com/clinic/clinic/internal/platform/civil"
	"github.com/clinic/clinic/internal/platform/db"
)

// History is the single clinical summary attached to a patient. It is
// removed with the patient.
type History struct {
	ID          int64      `db:"id" json:"id" gorm:"primaryKey"`
	Description *string    `db:"description" json:"description,omitempty"`
	Date        civil.Date `db:"date" json:"date" gorm:"type:date"`
	PatientID   int64      `db:"patient_id" json:"patient_id"`
}

func (History) TableName() string { return "history" }

func (h *History) apply(in *History) {
	h.Description = in.Description
	h.Date = in.Date
	h.PatientID = in.PatientID
}

// check enforces the rules the column types cannot express.
func (h *History) check() error {
	if h.Date.IsZero() {
		return db.Violation("history_date", "date is required")
	}
	return nil
}

// View is the API representation: the history with its patient embedded.
type View struct {
	*History
	Patient *patient.Patient `json:"patient,omitempty"`
}
