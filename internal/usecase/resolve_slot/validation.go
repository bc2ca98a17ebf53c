package resolve_slot

import (
	"fmt"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
)

func validateRequest(req *Request) error {
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}
	if req.TutorID == "" {
		return fmt.Errorf("%w: tutorId is required", ErrInvalidInput)
	}
	if req.StudentID == "" {
		return fmt.Errorf("%w: studentId is required", ErrInvalidInput)
	}
	if req.StartMinutes < domain.MinMinuteOfDay || req.StartMinutes > domain.MaxMinuteOfDay {
		return fmt.Errorf("%w: startMinutes %d out of range", ErrInvalidInput, req.StartMinutes)
	}
	if req.EndMinutes < domain.MinMinuteOfDay || req.EndMinutes > domain.MaxMinuteOfDay {
		return fmt.Errorf("%w: endMinutes %d out of range", ErrInvalidInput, req.EndMinutes)
	}
	return nil
}
