package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/db"
)

type Service struct {
	repo   PatientRepository
	logger zerolog.Logger
}

func NewService(repo PatientRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger.With().Str("entity", "patient").Logger()}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) (*Patient, error) {
	p.ID = 0
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	s.logger.Debug().Int64("id", p.ID).Str("national_id", p.NationalID).Msg("patient created")
	return p, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id int64, in *Patient) (*Patient, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update patient %d: %w", id, err)
	}
	existing.apply(in)
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("update patient %d: %w", id, err)
	}
	s.logger.Debug().Int64("id", id).Msg("patient updated")
	return existing, nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*Patient, bool, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// DeletePatient removes the patient together with its history. The store
// refuses while consultations still reference the patient.
func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete patient %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("delete patient %d: %w", id, db.ErrNotFound)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete patient %d: %w", id, err)
	}
	s.logger.Debug().Int64("id", id).Msg("patient deleted")
	return nil
}
