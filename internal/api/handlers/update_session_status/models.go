package update_session_status

import "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/sessions/models"

// UpdateSessionStatusRequest is the HTTP body for a status change.
type UpdateSessionStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *UpdateSessionStatusRequest) ToServiceRequest(userID string) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
