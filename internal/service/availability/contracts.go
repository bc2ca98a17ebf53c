package availability

import (
	"context"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
)

// SlotRepository is the availability storage interface this service needs.
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error)
	GetByID(ctx context.Context, id string) (*domain.AvailabilitySlot, error)
	GetActiveByTutorID(ctx context.Context, tutorID string) ([]*domain.AvailabilitySlot, error)
	Deactivate(ctx context.Context, id string) error
}

// TutorRepository checks the tutor exists before slots are attached to it.
type TutorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tutor, error)
}

// Logger is the narrow logging interface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
