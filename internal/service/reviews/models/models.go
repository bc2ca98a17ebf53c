package models

import (
	"time"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
)

// Request models

// CreateReviewRequest rates a tutor after a completed session.
type CreateReviewRequest struct {
	UserID  string  `json:"userId"`
	TutorID string  `json:"tutorId"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

// Response models

// ReviewResponse is a review as exposed over the API.
type ReviewResponse struct {
	ID        string  `json:"id"`
	TutorID   string  `json:"tutorId"`
	StudentID string  `json:"studentId"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ReviewListResponse wraps a tutor's reviews with the aggregate rating.
type ReviewListResponse struct {
	Reviews       []*ReviewResponse `json:"reviews"`
	Total         int               `json:"total"`
	AverageRating float64           `json:"averageRating"`
}

// FromDomainReview converts a domain review into the API shape.
func FromDomainReview(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		TutorID:   r.TutorID,
		StudentID: r.StudentID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReviewList converts a list of domain reviews.
func FromDomainReviewList(list []*domain.Review, averageRating float64) *ReviewListResponse {
	result := make([]*ReviewResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReview(r))
	}
	return &ReviewListResponse{
		Reviews:       result,
		Total:         len(result),
		AverageRating: averageRating,
	}
}
