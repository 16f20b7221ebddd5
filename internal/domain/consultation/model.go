package consultation

import (
	"time"

	"github.com/clinic/clinic/internal/domain/doctor"
	"github.com/clinic/clinic/internal/domain/patient"
	"github.com/clinic/clinic/internal/platform/db"
)

// Consultation is one recorded encounter between a patient and a doctor.
// DoctorID is cleared when the doctor is deleted; the consultation stays.
type Consultation struct {
	ID         int64     `db:"id" json:"id" gorm:"primaryKey"`
	OccurredAt time.Time `db:"occurred_at" json:"occurred_at"`
	Reason     string    `db:"reason" json:"reason"`
	Diagnosis  *string   `db:"diagnosis" json:"diagnosis,omitempty"`
	PatientID  int64     `db:"patient_id" json:"patient_id"`
	DoctorID   *int64    `db:"doctor_id" json:"doctor_id"`
}

func (Consultation) TableName() string { return "consultation" }

// check enforces the insert rules the schema leaves to the application:
// doctor_id is nullable so that doctors can be deleted, but a new
// consultation must name one.
func (c *Consultation) check() error {
	if c.OccurredAt.IsZero() {
		return db.Violation("consultation_occurred_at", "occurred_at is required")
	}
	if c.ID == 0 && (c.DoctorID == nil || *c.DoctorID == 0) {
		return db.Violation("consultation_doctor_id", "doctor is required")
	}
	return nil
}

// View is the API representation: the consultation with its patient, its
// doctor and its prescription embedded. Doctor is nil once the doctor has
// been deleted. Patient is left out when the consultation is listed under
// its patient, and Prescription when it is embedded in its prescription.
type View struct {
	*Consultation
	Patient      *patient.Patient `json:"patient,omitempty"`
	Doctor       *doctor.View     `json:"doctor,omitempty"`
	Prescription interface{}      `json:"prescription,omitempty"`
}
