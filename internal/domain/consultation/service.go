package consultation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Service records consultations. Consultations are append-only: once
// recorded they are neither edited nor removed through the service.
type Service struct {
	repo   ConsultationRepository
	logger zerolog.Logger
}

func NewService(repo ConsultationRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger.With().Str("entity", "consultation").Logger()}
}

func (s *Service) CreateConsultation(ctx context.Context, c *Consultation) (*Consultation, error) {
	c.ID = 0
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("create consultation: %w", err)
	}
	ev := s.logger.Debug().Int64("id", c.ID).Int64("patient_id", c.PatientID)
	if c.DoctorID != nil {
		ev = ev.Int64("doctor_id", *c.DoctorID)
	}
	ev.Msg("consultation created")
	return c, nil
}

func (s *Service) ListConsultations(ctx context.Context) ([]*Consultation, error) {
	return s.repo.FindAll(ctx)
}

// ListPatientConsultations returns a patient's consultations, oldest first.
func (s *Service) ListPatientConsultations(ctx context.Context, patientID int64) ([]*Consultation, error) {
	items, err := s.repo.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list consultations of patient %d: %w", patientID, err)
	}
	return items, nil
}
