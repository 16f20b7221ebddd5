package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/db"
)

type Service struct {
	repo   HistoryRepository
	logger zerolog.Logger
}

func NewService(repo HistoryRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger.With().Str("entity", "history").Logger()}
}

// CreateHistory attaches h to its patient. A patient that already has a
// history is rejected by the store.
func (s *Service) CreateHistory(ctx context.Context, h *History) (*History, error) {
	h.ID = 0
	if err := s.repo.Save(ctx, h); err != nil {
		return nil, fmt.Errorf("create history: %w", err)
	}
	s.logger.Debug().Int64("id", h.ID).Int64("patient_id", h.PatientID).Msg("history created")
	return h, nil
}

func (s *Service) UpdateHistory(ctx context.Context, id int64, in *History) (*History, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update history %d: %w", id, err)
	}
	existing.apply(in)
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("update history %d: %w", id, err)
	}
	s.logger.Debug().Int64("id", id).Msg("history updated")
	return existing, nil
}

func (s *Service) ListHistories(ctx context.Context) ([]*History, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) GetHistory(ctx context.Context, id int64) (*History, bool, error) {
	return found(s.repo.FindByID(ctx, id))
}

// GetHistoryByPatient returns the history of a patient, if one was recorded.
func (s *Service) GetHistoryByPatient(ctx context.Context, patientID int64) (*History, bool, error) {
	return found(s.repo.FindByPatientID(ctx, patientID))
}

func found(h *History, err error) (*History, bool, error) {
	if errors.Is(err, db.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return h, true, nil
}

func (s *Service) DeleteHistory(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete history %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("delete history %d: %w", id, db.ErrNotFound)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete history %d: %w", id, err)
	}
	s.logger.Debug().Int64("id", id).Msg("history deleted")
	return nil
}
