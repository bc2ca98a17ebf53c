package create_review

import "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/reviews/models"

// CreateReviewRequest is the HTTP body for rating a tutor. The reviewing
// student is the authenticated caller.
type CreateReviewRequest struct {
	TutorID string  `json:"tutorId"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *CreateReviewRequest) ToServiceRequest(userID string) *models.CreateReviewRequest {
	return &models.CreateReviewRequest{
		UserID:  userID,
		TutorID: r.TutorID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}
