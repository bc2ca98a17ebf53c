package reviews

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/reviews/models"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/ptr"
)

type fakeReviewRepo struct {
	reviews []*domain.Review
	nextID  int
}

func (r *fakeReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	r.nextID++
	review.ID = "review-" + strconv.Itoa(r.nextID)
	review.CreatedAt = time.Now()
	r.reviews = append(r.reviews, review)
	return review, nil
}

func (r *fakeReviewRepo) GetByTutorID(_ context.Context, tutorID string) ([]*domain.Review, error) {
	var result []*domain.Review
	for _, review := range r.reviews {
		if review.TutorID == tutorID {
			result = append(result, review)
		}
	}
	return result, nil
}

func (r *fakeReviewRepo) GetAverageRating(_ context.Context, tutorID string) (float64, error) {
	var sum, count int
	for _, review := range r.reviews {
		if review.TutorID == tutorID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

type fakeSessionRepo struct {
	sessions []*domain.Session
}

func (r *fakeSessionRepo) GetByStudentID(_ context.Context, studentID string) ([]*domain.Session, error) {
	var result []*domain.Session
	for _, s := range r.sessions {
		if s.StudentID == studentID {
			result = append(result, s)
		}
	}
	return result, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func completedSession(studentID, tutorID string) *domain.Session {
	return &domain.Session{
		ID:        "session-1",
		TutorID:   tutorID,
		StudentID: studentID,
		Status:    domain.SessionStatusCompleted,
	}
}

func TestCreate_Success(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	sessionRepo := &fakeSessionRepo{sessions: []*domain.Session{completedSession("student-1", "tutor-1")}}
	svc := NewService(reviewRepo, sessionRepo, noopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateReviewRequest{
		UserID:  "student-1",
		TutorID: "tutor-1",
		Rating:  5,
		Comment: ptr.Ptr("great explanations"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 5, resp.Rating)
}

func TestCreate_RequiresCompletedSession(t *testing.T) {
	tests := []struct {
		name     string
		sessions []*domain.Session
	}{
		{"no sessions at all", nil},
		{"pending session only", []*domain.Session{{
			StudentID: "student-1", TutorID: "tutor-1", Status: domain.SessionStatusPending,
		}}},
		{"completed with other tutor", []*domain.Session{completedSession("student-1", "tutor-2")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeReviewRepo{}, &fakeSessionRepo{sessions: tt.sessions}, noopLogger{})

			_, err := svc.Create(context.Background(), &models.CreateReviewRequest{
				UserID:  "student-1",
				TutorID: "tutor-1",
				Rating:  4,
			})
			assert.ErrorIs(t, err, ErrNoCompletedSession)
		})
	}
}

func TestCreate_RatingBounds(t *testing.T) {
	sessionRepo := &fakeSessionRepo{sessions: []*domain.Session{completedSession("student-1", "tutor-1")}}
	svc := NewService(&fakeReviewRepo{}, sessionRepo, noopLogger{})

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), &models.CreateReviewRequest{
			UserID:  "student-1",
			TutorID: "tutor-1",
			Rating:  rating,
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "rating %d", rating)
	}
}

func TestListByTutor(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	sessionRepo := &fakeSessionRepo{sessions: []*domain.Session{
		completedSession("student-1", "tutor-1"),
		{ID: "session-2", StudentID: "student-2", TutorID: "tutor-1", Status: domain.SessionStatusCompleted},
	}}
	svc := NewService(reviewRepo, sessionRepo, noopLogger{})

	for i, req := range []*models.CreateReviewRequest{
		{UserID: "student-1", TutorID: "tutor-1", Rating: 5},
		{UserID: "student-2", TutorID: "tutor-1", Rating: 3},
	} {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err, "review %d", i)
	}

	resp, err := svc.ListByTutor(context.Background(), "tutor-1")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.InDelta(t, 4.0, resp.AverageRating, 0.001)
}

func TestListByTutor_Empty(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, &fakeSessionRepo{}, noopLogger{})

	resp, err := svc.ListByTutor(context.Background(), "tutor-1")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Zero(t, resp.AverageRating)
}
