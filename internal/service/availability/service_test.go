package availability

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	slotRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/slots"
	tutorRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/tutors"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/availability/models"
)

type fakeSlotRepo struct {
	slots  map[string]*domain.AvailabilitySlot
	nextID int
}

func newFakeSlotRepo(list ...*domain.AvailabilitySlot) *fakeSlotRepo {
	r := &fakeSlotRepo{slots: make(map[string]*domain.AvailabilitySlot)}
	for _, s := range list {
		r.slots[s.ID] = s
	}
	return r
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	r.nextID++
	slot.ID = "slot-" + strconv.Itoa(r.nextID)
	slot.Active = true
	r.slots[slot.ID] = slot
	return slot, nil
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id string) (*domain.AvailabilitySlot, error) {
	if s, ok := r.slots[id]; ok {
		return s, nil
	}
	return nil, slotRepo.ErrSlotNotFound
}

func (r *fakeSlotRepo) GetActiveByTutorID(_ context.Context, tutorID string) ([]*domain.AvailabilitySlot, error) {
	var result []*domain.AvailabilitySlot
	for _, s := range r.slots {
		if s.TutorID == tutorID && s.Active {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeSlotRepo) Deactivate(_ context.Context, id string) error {
	s, ok := r.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	s.Active = false
	return nil
}

type fakeTutorRepo struct {
	tutors map[string]*domain.Tutor
}

func (r *fakeTutorRepo) GetByID(_ context.Context, id string) (*domain.Tutor, error) {
	if t, ok := r.tutors[id]; ok {
		return t, nil
	}
	return nil, tutorRepo.ErrTutorNotFound
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService(slots *fakeSlotRepo) *Service {
	tutors := &fakeTutorRepo{tutors: map[string]*domain.Tutor{
		"tutor-1": {ID: "tutor-1", Status: domain.TutorStatusApproved},
	}}
	return NewService(slots, tutors, noopLogger{})
}

func TestCreateSlot_Success(t *testing.T) {
	repo := newFakeSlotRepo()
	svc := newService(repo)

	resp, err := svc.CreateSlot(context.Background(), &models.CreateSlotRequest{
		UserID:       "tutor-1",
		DayOfWeek:    3,
		StartMinutes: 540,
		EndMinutes:   720,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "tutor-1", resp.TutorID)
	assert.True(t, resp.Active)
}

func TestCreateSlot_UnknownTutor(t *testing.T) {
	svc := newService(newFakeSlotRepo())

	_, err := svc.CreateSlot(context.Background(), &models.CreateSlotRequest{
		UserID:       "tutor-9",
		DayOfWeek:    3,
		StartMinutes: 540,
		EndMinutes:   720,
	})
	assert.ErrorIs(t, err, ErrTutorNotFound)
}

func TestCreateSlot_Validation(t *testing.T) {
	svc := newService(newFakeSlotRepo())

	tests := []struct {
		name string
		req  models.CreateSlotRequest
	}{
		{"day too high", models.CreateSlotRequest{UserID: "tutor-1", DayOfWeek: 7, StartMinutes: 0, EndMinutes: 60}},
		{"day negative", models.CreateSlotRequest{UserID: "tutor-1", DayOfWeek: -1, StartMinutes: 0, EndMinutes: 60}},
		{"start out of range", models.CreateSlotRequest{UserID: "tutor-1", DayOfWeek: 1, StartMinutes: 1500, EndMinutes: 60}},
		{"end before start", models.CreateSlotRequest{UserID: "tutor-1", DayOfWeek: 1, StartMinutes: 600, EndMinutes: 540}},
		{"zero length", models.CreateSlotRequest{UserID: "tutor-1", DayOfWeek: 1, StartMinutes: 600, EndMinutes: 600}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSlot(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDeactivate_OwnerOnly(t *testing.T) {
	slot := &domain.AvailabilitySlot{ID: "slot-1", TutorID: "tutor-1", Active: true}
	repo := newFakeSlotRepo(slot)
	svc := newService(repo)

	err := svc.Deactivate(context.Background(), "slot-1", "tutor-2")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.True(t, slot.Active)

	err = svc.Deactivate(context.Background(), "slot-1", "tutor-1")
	require.NoError(t, err)
	assert.False(t, slot.Active)
}

func TestDeactivate_NotFound(t *testing.T) {
	svc := newService(newFakeSlotRepo())

	err := svc.Deactivate(context.Background(), "missing", "tutor-1")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestListByTutor_ActiveOnly(t *testing.T) {
	repo := newFakeSlotRepo(
		&domain.AvailabilitySlot{ID: "slot-1", TutorID: "tutor-1", Active: true},
		&domain.AvailabilitySlot{ID: "slot-2", TutorID: "tutor-1", Active: false},
		&domain.AvailabilitySlot{ID: "slot-3", TutorID: "tutor-2", Active: true},
	)
	svc := newService(repo)

	resp, err := svc.ListByTutor(context.Background(), "tutor-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "slot-1", resp.Slots[0].ID)
}
