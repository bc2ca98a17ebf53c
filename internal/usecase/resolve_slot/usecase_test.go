package resolve_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/slots"
)

type fakeSlotRepo struct {
	slot *domain.AvailabilitySlot
	err  error
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id string) (*domain.AvailabilitySlot, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.slot == nil || r.slot.ID != id {
		return nil, slots.ErrSlotNotFound
	}
	return r.slot, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func mustLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(domain.PlatformTimeZone)
	require.NoError(t, err)
	return loc
}

func TestResolve_Success(t *testing.T) {
	loc := mustLocation(t)
	// Monday 2026-01-05, 10:00 local.
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, loc)

	slot := &domain.AvailabilitySlot{
		ID:           "slot-1",
		TutorID:      "tutor-1",
		DayOfWeek:    3, // Wednesday
		StartMinutes: 540,
		EndMinutes:   720,
		Active:       true,
	}

	uc, err := New(&fakeSlotRepo{slot: slot}, &fixedTime{now: now}, noopLogger{})
	require.NoError(t, err)

	resp, err := uc.Resolve(context.Background(), &Request{
		SlotID:       "slot-1",
		TutorID:      "tutor-1",
		StudentID:    "student-1",
		StartMinutes: 600,
		EndMinutes:   660,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 1, 7, 10, 0, 0, 0, loc), resp.StartTime)
	assert.Equal(t, time.Date(2026, 1, 7, 11, 0, 0, 0, loc), resp.EndTime)
}

func TestResolve_SlotNotFound(t *testing.T) {
	uc, err := New(&fakeSlotRepo{}, &fixedTime{now: time.Now()}, noopLogger{})
	require.NoError(t, err)

	_, err = uc.Resolve(context.Background(), &Request{
		SlotID:       "missing",
		TutorID:      "tutor-1",
		StudentID:    "student-1",
		StartMinutes: 600,
		EndMinutes:   660,
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestResolve_WrongTutor(t *testing.T) {
	slot := &domain.AvailabilitySlot{
		ID:           "slot-1",
		TutorID:      "tutor-1",
		DayOfWeek:    3,
		StartMinutes: 540,
		EndMinutes:   720,
		Active:       true,
	}

	uc, err := New(&fakeSlotRepo{slot: slot}, &fixedTime{now: time.Now()}, noopLogger{})
	require.NoError(t, err)

	_, err = uc.Resolve(context.Background(), &Request{
		SlotID:       "slot-1",
		TutorID:      "tutor-2",
		StudentID:    "student-1",
		StartMinutes: 600,
		EndMinutes:   660,
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestResolve_InactiveSlot(t *testing.T) {
	slot := &domain.AvailabilitySlot{
		ID:           "slot-1",
		TutorID:      "tutor-1",
		DayOfWeek:    3,
		StartMinutes: 540,
		EndMinutes:   720,
		Active:       false,
	}

	uc, err := New(&fakeSlotRepo{slot: slot}, &fixedTime{now: time.Now()}, noopLogger{})
	require.NoError(t, err)

	_, err = uc.Resolve(context.Background(), &Request{
		SlotID:       "slot-1",
		TutorID:      "tutor-1",
		StudentID:    "student-1",
		StartMinutes: 600,
		EndMinutes:   660,
	})
	assert.ErrorIs(t, err, ErrSlotInactive)
}

func TestResolve_RangeOutsideWindow(t *testing.T) {
	slot := &domain.AvailabilitySlot{
		ID:           "slot-1",
		TutorID:      "tutor-1",
		DayOfWeek:    3,
		StartMinutes: 540,
		EndMinutes:   720,
		Active:       true,
	}

	uc, err := New(&fakeSlotRepo{slot: slot}, &fixedTime{now: time.Now()}, noopLogger{})
	require.NoError(t, err)

	_, err = uc.Resolve(context.Background(), &Request{
		SlotID:       "slot-1",
		TutorID:      "tutor-1",
		StudentID:    "student-1",
		StartMinutes: 600,
		EndMinutes:   780,
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestResolve_InvalidInput(t *testing.T) {
	uc, err := New(&fakeSlotRepo{}, &fixedTime{now: time.Now()}, noopLogger{})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  Request
	}{
		{"missing slot id", Request{TutorID: "t", StudentID: "s", StartMinutes: 0, EndMinutes: 60}},
		{"missing tutor id", Request{SlotID: "sl", StudentID: "s", StartMinutes: 0, EndMinutes: 60}},
		{"missing student id", Request{SlotID: "sl", TutorID: "t", StartMinutes: 0, EndMinutes: 60}},
		{"start out of range", Request{SlotID: "sl", TutorID: "t", StudentID: "s", StartMinutes: -1, EndMinutes: 60}},
		{"end out of range", Request{SlotID: "sl", TutorID: "t", StudentID: "s", StartMinutes: 0, EndMinutes: 1500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Resolve(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
