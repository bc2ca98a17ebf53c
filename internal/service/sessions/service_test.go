package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	sessionRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/sessions"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/sessions/models"
)

type fakeRepo struct {
	sessions map[string]*domain.Session
	updated  map[string]domain.SessionStatus
}

func newFakeRepo(list ...*domain.Session) *fakeRepo {
	r := &fakeRepo{
		sessions: make(map[string]*domain.Session),
		updated:  make(map[string]domain.SessionStatus),
	}
	for _, s := range list {
		r.sessions[s.ID] = s
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Session, error) {
	if s, ok := r.sessions[id]; ok {
		return s, nil
	}
	return nil, sessionRepo.ErrSessionNotFound
}

func (r *fakeRepo) GetByStudentID(_ context.Context, studentID string) ([]*domain.Session, error) {
	var result []*domain.Session
	for _, s := range r.sessions {
		if s.StudentID == studentID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeRepo) GetByTutorID(_ context.Context, tutorID string) ([]*domain.Session, error) {
	var result []*domain.Session
	for _, s := range r.sessions {
		if s.TutorID == tutorID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.SessionStatus) error {
	s, ok := r.sessions[id]
	if !ok {
		return sessionRepo.ErrSessionNotFound
	}
	s.Status = status
	r.updated[id] = status
	return nil
}

// passthroughTx runs the function without a real transaction.
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testSession() *domain.Session {
	return &domain.Session{
		ID:                 "session-1",
		TutorID:            "tutor-1",
		StudentID:          "student-1",
		ScheduledStart:     time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC),
		DurationHours:      1.5,
		Subtotal:           600,
		PlatformFee:        48,
		Total:              648,
		PaymentReferenceID: "pi_1",
		Status:             domain.SessionStatusPending,
	}
}

func TestGetByID_Parties(t *testing.T) {
	svc := NewService(newFakeRepo(testSession()), passthroughTx{}, noopLogger{})

	for _, userID := range []string{"tutor-1", "student-1"} {
		resp, err := svc.GetByID(context.Background(), "session-1", userID)
		require.NoError(t, err, "user %s", userID)
		assert.Equal(t, "session-1", resp.ID)
		assert.Equal(t, int64(648), resp.Total)
	}
}

func TestGetByID_AccessDenied(t *testing.T) {
	svc := NewService(newFakeRepo(testSession()), passthroughTx{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), "session-1", "stranger")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), passthroughTx{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), "missing", "tutor-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetStudentSessions_OwnOnly(t *testing.T) {
	svc := NewService(newFakeRepo(testSession()), passthroughTx{}, noopLogger{})

	resp, err := svc.GetStudentSessions(context.Background(), "student-1", "student-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetStudentSessions(context.Background(), "student-1", "student-2")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetTutorSessions_OwnOnly(t *testing.T) {
	svc := NewService(newFakeRepo(testSession()), passthroughTx{}, noopLogger{})

	resp, err := svc.GetTutorSessions(context.Background(), "tutor-1", "tutor-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetTutorSessions(context.Background(), "tutor-1", "student-1")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_ForwardTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.SessionStatus
		to      string
		wantErr error
	}{
		{"pending to completed", domain.SessionStatusPending, "completed", nil},
		{"pending to cancelled", domain.SessionStatusPending, "cancelled", nil},
		{"completed is terminal", domain.SessionStatusCompleted, "cancelled", ErrInvalidTransition},
		{"cancelled is terminal", domain.SessionStatusCancelled, "completed", ErrInvalidTransition},
		{"no going back to pending", domain.SessionStatusPending, "pending", ErrInvalidTransition},
		{"unknown status", domain.SessionStatusPending, "archived", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := testSession()
			session.Status = tt.from
			repo := newFakeRepo(session)
			svc := NewService(repo, passthroughTx{}, noopLogger{})

			err := svc.UpdateStatus(context.Background(), "session-1", &models.UpdateStatusRequest{
				UserID: "tutor-1",
				Status: tt.to,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.SessionStatus(tt.to), repo.updated["session-1"])
		})
	}
}

func TestUpdateStatus_AccessDenied(t *testing.T) {
	svc := NewService(newFakeRepo(testSession()), passthroughTx{}, noopLogger{})

	err := svc.UpdateStatus(context.Background(), "session-1", &models.UpdateStatusRequest{
		UserID: "stranger",
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
