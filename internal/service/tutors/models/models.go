package models

import "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"

// Request models

// UpdateStatusRequest moves a tutor through the vetting flow.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response models

// TutorResponse is the tutor directory entry as exposed over the API.
type TutorResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	HourlyRate int64   `json:"hourlyRate"`
	Status     string  `json:"status"`
	CalLink    *string `json:"calLink,omitempty"`
}

// FromDomainTutor converts a domain tutor into the API shape. The email is
// deliberately not exposed.
func FromDomainTutor(t *domain.Tutor) *TutorResponse {
	return &TutorResponse{
		ID:         t.ID,
		Name:       t.Name,
		HourlyRate: t.HourlyRate,
		Status:     string(t.Status),
		CalLink:    t.CalLink,
	}
}
