package update_tutor_status

import (
	"context"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/tutors/models"
)

type TutorService interface {
	UpdateStatus(ctx context.Context, tutorID string, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
