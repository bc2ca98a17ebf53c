package get_tutor_slots

import (
	"context"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/availability/models"
)

type AvailabilityService interface {
	ListByTutor(ctx context.Context, tutorID string) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
