package prescription

import "github.com/clinic/clinic/internal/domain/consultation"

// Prescription is the single medication order of a consultation. It is
// removed with the consultation.
type Prescription struct {
	ID             int64   `db:"id" json:"id" gorm:"primaryKey"`
	Medication     *string `db:"medication" json:"medication,omitempty"`
	Dosage         *string `db:"dosage" json:"dosage,omitempty"`
	ConsultationID int64   `db:"consultation_id" json:"consultation_id"`
}

func (Prescription) TableName() string { return "prescription" }

func (p *Prescription) apply(in *Prescription) {
	p.Medication = in.Medication
	p.Dosage = in.Dosage
	p.ConsultationID = in.ConsultationID
}

// View is the API representation: the prescription with its consultation
// embedded.
type View struct {
	*Prescription
	Consultation *consultation.View `json:"consultation,omitempty"`
}
