package create_slot

import "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/availability/models"

// CreateSlotRequest is the HTTP body for declaring a weekly window. The
// owning tutor is the authenticated caller.
type CreateSlotRequest struct {
	DayOfWeek    int `json:"dayOfWeek"`
	StartMinutes int `json:"startMinutes"`
	EndMinutes   int `json:"endMinutes"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *CreateSlotRequest) ToServiceRequest(userID string) *models.CreateSlotRequest {
	return &models.CreateSlotRequest{
		UserID:       userID,
		DayOfWeek:    r.DayOfWeek,
		StartMinutes: r.StartMinutes,
		EndMinutes:   r.EndMinutes,
	}
}
