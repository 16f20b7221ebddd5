package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/db"
)

type Service struct {
	repo   DoctorRepository
	logger zerolog.Logger
}

func NewService(repo DoctorRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger.With().Str("entity", "doctor").Logger()}
}

// CreateDoctor stores d under a fresh id. The specialty reference is checked
// by the store, not here.
func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) (*Doctor, error) {
	d.ID = 0
	if err := s.repo.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	s.logger.Debug().Int64("id", d.ID).Int64("specialty_id", d.SpecialtyID).Msg("doctor created")
	return d, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id int64, in *Doctor) (*Doctor, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update doctor %d: %w", id, err)
	}
	existing.apply(in)
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("update doctor %d: %w", id, err)
	}
	s.logger.Debug().Int64("id", id).Msg("doctor updated")
	return existing, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.repo.FindAll(ctx)
}

// ListSpecialtyDoctors returns the doctors attached to one specialty.
func (s *Service) ListSpecialtyDoctors(ctx context.Context, specialtyID int64) ([]*Doctor, error) {
	return s.repo.FindBySpecialtyID(ctx, specialtyID)
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*Doctor, bool, error) {
	d, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return d, true, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete doctor %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("delete doctor %d: %w", id, db.ErrNotFound)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete doctor %d: %w", id, err)
	}
	s.logger.Debug().Int64("id", id).Msg("doctor deleted")
	return nil
}
