package tutors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	tutorRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/tutors"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/tutors/models"
)

type fakeTutorRepo struct {
	tutors map[string]*domain.Tutor
}

func (r *fakeTutorRepo) GetByID(_ context.Context, id string) (*domain.Tutor, error) {
	if t, ok := r.tutors[id]; ok {
		return t, nil
	}
	return nil, tutorRepo.ErrTutorNotFound
}

func (r *fakeTutorRepo) UpdateStatus(_ context.Context, id string, status domain.TutorStatus) error {
	t, ok := r.tutors[id]
	if !ok {
		return tutorRepo.ErrTutorNotFound
	}
	t.Status = status
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestGetByID(t *testing.T) {
	repo := &fakeTutorRepo{tutors: map[string]*domain.Tutor{
		"tutor-1": {ID: "tutor-1", Name: "Ana", HourlyRate: 400, Status: domain.TutorStatusApproved},
	}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetByID(context.Background(), "tutor-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, "approved", resp.Status)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTutorNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeTutorRepo{tutors: map[string]*domain.Tutor{
		"tutor-1": {ID: "tutor-1", Status: domain.TutorStatusPending},
	}}
	svc := NewService(repo, noopLogger{})

	err := svc.UpdateStatus(context.Background(), "tutor-1", &models.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, domain.TutorStatusApproved, repo.tutors["tutor-1"].Status)

	// Approval is revocable.
	err = svc.UpdateStatus(context.Background(), "tutor-1", &models.UpdateStatusRequest{Status: "rejected"})
	require.NoError(t, err)
	assert.Equal(t, domain.TutorStatusRejected, repo.tutors["tutor-1"].Status)
}

func TestUpdateStatus_Invalid(t *testing.T) {
	repo := &fakeTutorRepo{tutors: map[string]*domain.Tutor{
		"tutor-1": {ID: "tutor-1", Status: domain.TutorStatusPending},
	}}
	svc := NewService(repo, noopLogger{})

	err := svc.UpdateStatus(context.Background(), "tutor-1", &models.UpdateStatusRequest{Status: "banned"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrTutorNotFound)
}
