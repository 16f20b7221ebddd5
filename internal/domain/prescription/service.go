package prescription

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/db"
)

type Service struct {
	repo   PrescriptionRepository
	logger zerolog.Logger
}

func NewService(repo PrescriptionRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger.With().Str("entity", "prescription").Logger()}
}

// CreatePrescription attaches p to its consultation. A consultation that
// already has a prescription is rejected by the store.
func (s *Service) CreatePrescription(ctx context.Context, p *Prescription) (*Prescription, error) {
	p.ID = 0
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("create prescription: %w", err)
	}
	s.logger.Debug().Int64("id", p.ID).Int64("consultation_id", p.ConsultationID).Msg("prescription created")
	return p, nil
}

func (s *Service) UpdatePrescription(ctx context.Context, id int64, in *Prescription) (*Prescription, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update prescription %d: %w", id, err)
	}
	existing.apply(in)
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("update prescription %d: %w", id, err)
	}
	s.logger.Debug().Int64("id", id).Msg("prescription updated")
	return existing, nil
}

func (s *Service) ListPrescriptions(ctx context.Context) ([]*Prescription, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) GetPrescription(ctx context.Context, id int64) (*Prescription, bool, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// GetConsultationPrescription returns the prescription written during a
// consultation, if any.
func (s *Service) GetConsultationPrescription(ctx context.Context, consultationID int64) (*Prescription, bool, error) {
	p, err := s.repo.FindByConsultationID(ctx, consultationID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func (s *Service) DeletePrescription(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete prescription %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("delete prescription %d: %w", id, db.ErrNotFound)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete prescription %d: %w", id, err)
	}
	s.logger.Debug().Int64("id", id).Msg("prescription deleted")
	return nil
}
