package reviews

import (
	"context"
	"fmt"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/reviews/models"
)

// Service manages student reviews of tutors.
type Service struct {
	reviewRepo  ReviewRepository
	sessionRepo SessionRepository
	logger      Logger
}

func NewService(
	reviewRepo ReviewRepository,
	sessionRepo SessionRepository,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Create records a review. Only students with a completed session with the
// tutor may review them.
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: review for tutor=%s by student=%s rating=%d", req.TutorID, req.UserID, req.Rating)

	if err := validateCreateReview(req); err != nil {
		s.logger.Warn("Create: invalid request from student=%s: %v", req.UserID, err)
		return nil, err
	}

	sessions, err := s.sessionRepo.GetByStudentID(ctx, req.UserID)
	if err != nil {
		s.logger.Error("Create: repository error for student=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	if !hasCompletedSessionWith(sessions, req.TutorID) {
		s.logger.Warn("Create: student=%s has no completed session with tutor=%s", req.UserID, req.TutorID)
		return nil, ErrNoCompletedSession
	}

	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		TutorID:   req.TutorID,
		StudentID: req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		s.logger.Error("Create: repository error for tutor=%s: %v", req.TutorID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: review id=%s recorded for tutor=%s", review.ID, req.TutorID)
	return models.FromDomainReview(review), nil
}

// ListByTutor lists a tutor's reviews with the average rating. Public.
func (s *Service) ListByTutor(ctx context.Context, tutorID string) (*models.ReviewListResponse, error) {
	s.logger.Info("ListByTutor: fetching reviews for tutor=%s", tutorID)

	list, err := s.reviewRepo.GetByTutorID(ctx, tutorID)
	if err != nil {
		s.logger.Error("ListByTutor: repository error for tutor=%s: %v", tutorID, err)
		return nil, fmt.Errorf("%w: ListByTutor - repository error: %v", ErrInternal, err)
	}

	avg, err := s.reviewRepo.GetAverageRating(ctx, tutorID)
	if err != nil {
		s.logger.Error("ListByTutor: failed to get average for tutor=%s: %v", tutorID, err)
		return nil, fmt.Errorf("%w: ListByTutor - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(list, avg), nil
}

func validateCreateReview(req *models.CreateReviewRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if req.TutorID == "" {
		return fmt.Errorf("%w: tutorId is required", ErrInvalidInput)
	}
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating %d out of range", ErrInvalidInput, req.Rating)
	}
	return nil
}

func hasCompletedSessionWith(sessions []*domain.Session, tutorID string) bool {
	for _, session := range sessions {
		if session.TutorID == tutorID && session.Status == domain.SessionStatusCompleted {
			return true
		}
	}
	return false
}
