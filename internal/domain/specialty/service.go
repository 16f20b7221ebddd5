package specialty

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/db"
)

type Service struct {
	repo   SpecialtyRepository
	logger zerolog.Logger
}

func NewService(repo SpecialtyRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger.With().Str("entity", "specialty").Logger()}
}

func (s *Service) CreateSpecialty(ctx context.Context, sp *Specialty) (*Specialty, error) {
	sp.ID = 0
	if err := s.repo.Save(ctx, sp); err != nil {
		return nil, fmt.Errorf("create specialty: %w", err)
	}
	s.logger.Debug().Int64("id", sp.ID).Msg("specialty created")
	return sp, nil
}

// UpdateSpecialty overwrites name and description of the stored specialty.
func (s *Service) UpdateSpecialty(ctx context.Context, id int64, in *Specialty) (*Specialty, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update specialty %d: %w", id, err)
	}
	existing.apply(in)
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("update specialty %d: %w", id, err)
	}
	s.logger.Debug().Int64("id", id).Msg("specialty updated")
	return existing, nil
}

func (s *Service) ListSpecialties(ctx context.Context) ([]*Specialty, error) {
	return s.repo.FindAll(ctx)
}

// GetSpecialty reports found=false, without an error, for unknown ids.
func (s *Service) GetSpecialty(ctx context.Context, id int64) (*Specialty, bool, error) {
	sp, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return sp, true, nil
}

// DeleteSpecialty removes the specialty and, through the store, its doctors.
func (s *Service) DeleteSpecialty(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete specialty %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("delete specialty %d: %w", id, db.ErrNotFound)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete specialty %d: %w", id, err)
	}
	s.logger.Debug().Int64("id", id).Msg("specialty deleted")
	return nil
}
