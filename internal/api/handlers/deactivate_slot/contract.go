package deactivate_slot

import "context"

type AvailabilityService interface {
	Deactivate(ctx context.Context, slotID string, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
