package create_slot

import (
	"context"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/availability/models"
)

type AvailabilityService interface {
	CreateSlot(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
