package tutors

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	tutorRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/tutors"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/tutors/models"
)

// Service manages tutor vetting status. Approval gates every booking path;
// revoking it takes effect on the next confirmation attempt.
type Service struct {
	tutorRepo TutorRepository
	logger    Logger
}

func NewService(tutorRepo TutorRepository, logger Logger) *Service {
	return &Service{
		tutorRepo: tutorRepo,
		logger:    logger,
	}
}

// GetByID fetches a tutor directory entry.
func (s *Service) GetByID(ctx context.Context, id string) (*models.TutorResponse, error) {
	s.logger.Info("GetByID: fetching tutor id=%s", id)

	tutor, err := s.tutorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			s.logger.Warn("GetByID: tutor id=%s not found", id)
			return nil, ErrTutorNotFound
		}
		s.logger.Error("GetByID: repository error for tutor id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTutor(tutor), nil
}

// UpdateStatus sets the tutor's vetting status. Any valid status may be set
// at any time: approvals are revocable.
func (s *Service) UpdateStatus(ctx context.Context, tutorID string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating tutor id=%s to status=%s", tutorID, req.Status)

	if !domain.ValidTutorStatus(req.Status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for tutor id=%s", req.Status, tutorID)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if err := s.tutorRepo.UpdateStatus(ctx, tutorID, domain.TutorStatus(req.Status)); err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			s.logger.Warn("UpdateStatus: tutor id=%s not found", tutorID)
			return ErrTutorNotFound
		}
		s.logger.Error("UpdateStatus: repository error for tutor id=%s: %v", tutorID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: tutor id=%s moved to status=%s", tutorID, req.Status)
	return nil
}
