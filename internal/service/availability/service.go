package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	slotRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/slots"
	tutorRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/tutors"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/availability/models"
)

// Service manages a tutor's recurring weekly availability windows.
type Service struct {
	slotRepo  SlotRepository
	tutorRepo TutorRepository
	logger    Logger
}

func NewService(
	slotRepo SlotRepository,
	tutorRepo TutorRepository,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:  slotRepo,
		tutorRepo: tutorRepo,
		logger:    logger,
	}
}

// CreateSlot declares a new window owned by the calling tutor.
func (s *Service) CreateSlot(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateSlot: tutor=%s day=%d range=%d-%d",
		req.UserID, req.DayOfWeek, req.StartMinutes, req.EndMinutes)

	if err := validateCreateSlot(req); err != nil {
		s.logger.Warn("CreateSlot: invalid request for tutor=%s: %v", req.UserID, err)
		return nil, err
	}

	if _, err := s.tutorRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			s.logger.Warn("CreateSlot: tutor=%s not found", req.UserID)
			return nil, ErrTutorNotFound
		}
		s.logger.Error("CreateSlot: repository error for tutor=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CreateSlot - repository error: %v", ErrInternal, err)
	}

	slot, err := s.slotRepo.Create(ctx, &domain.AvailabilitySlot{
		TutorID:      req.UserID,
		DayOfWeek:    req.DayOfWeek,
		StartMinutes: req.StartMinutes,
		EndMinutes:   req.EndMinutes,
	})
	if err != nil {
		s.logger.Error("CreateSlot: repository error for tutor=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CreateSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSlot: created slot id=%s for tutor=%s", slot.ID, req.UserID)
	return models.FromDomainSlot(slot), nil
}

// Deactivate withdraws a window. Only the owning tutor may do it.
func (s *Service) Deactivate(ctx context.Context, slotID string, userID string) error {
	s.logger.Info("Deactivate: slot id=%s by user=%s", slotID, userID)

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Deactivate: slot id=%s not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("Deactivate: repository error for slot id=%s: %v", slotID, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	if slot.TutorID != userID {
		s.logger.Warn("Deactivate: access denied for user=%s to slot id=%s", userID, slotID)
		return ErrAccessDenied
	}

	if err := s.slotRepo.Deactivate(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("Deactivate: repository error for slot id=%s: %v", slotID, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: slot id=%s deactivated", slotID)
	return nil
}

// ListByTutor lists a tutor's active windows. Public: students browse these.
func (s *Service) ListByTutor(ctx context.Context, tutorID string) (*models.SlotListResponse, error) {
	s.logger.Info("ListByTutor: fetching slots for tutor=%s", tutorID)

	list, err := s.slotRepo.GetActiveByTutorID(ctx, tutorID)
	if err != nil {
		s.logger.Error("ListByTutor: repository error for tutor=%s: %v", tutorID, err)
		return nil, fmt.Errorf("%w: ListByTutor - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(list), nil
}

func validateCreateSlot(req *models.CreateSlotRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek %d out of range", ErrInvalidInput, req.DayOfWeek)
	}
	if req.StartMinutes < domain.MinMinuteOfDay || req.StartMinutes > domain.MaxMinuteOfDay {
		return fmt.Errorf("%w: startMinutes %d out of range", ErrInvalidInput, req.StartMinutes)
	}
	if req.EndMinutes < domain.MinMinuteOfDay || req.EndMinutes > domain.MaxMinuteOfDay {
		return fmt.Errorf("%w: endMinutes %d out of range", ErrInvalidInput, req.EndMinutes)
	}
	if req.EndMinutes <= req.StartMinutes {
		return fmt.Errorf("%w: endMinutes %d is not after startMinutes %d", ErrInvalidInput, req.EndMinutes, req.StartMinutes)
	}
	return nil
}
