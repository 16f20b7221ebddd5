package consultation

import "context"

// ConsultationRepository is the keyed storage behind the consultation
// service. Deleting a consultation deletes its prescription.
type ConsultationRepository interface {
	Save(ctx context.Context, c *Consultation) error
	FindByID(ctx context.Context, id int64) (*Consultation, error)
	FindAll(ctx context.Context) ([]*Consultation, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]*Consultation, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
