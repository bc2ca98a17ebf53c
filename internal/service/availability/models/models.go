package models

import "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"

// Request models

// CreateSlotRequest declares a new recurring weekly window.
type CreateSlotRequest struct {
	UserID       string `json:"userId"`
	DayOfWeek    int    `json:"dayOfWeek"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
}

// Response models

// SlotResponse is the availability window as exposed over the API.
type SlotResponse struct {
	ID           string `json:"id"`
	TutorID      string `json:"tutorId"`
	DayOfWeek    int    `json:"dayOfWeek"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
	Active       bool   `json:"active"`
}

// SlotListResponse wraps a tutor's active windows.
type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
	Total int             `json:"total"`
}

// FromDomainSlot converts a domain slot into the API shape.
func FromDomainSlot(s *domain.AvailabilitySlot) *SlotResponse {
	return &SlotResponse{
		ID:           s.ID,
		TutorID:      s.TutorID,
		DayOfWeek:    s.DayOfWeek,
		StartMinutes: s.StartMinutes,
		EndMinutes:   s.EndMinutes,
		Active:       s.Active,
	}
}

// FromDomainSlotList converts a list of domain slots.
func FromDomainSlotList(list []*domain.AvailabilitySlot) *SlotListResponse {
	result := make([]*SlotResponse, 0, len(list))
	for _, s := range list {
		result = append(result, FromDomainSlot(s))
	}
	return &SlotListResponse{
		Slots: result,
		Total: len(result),
	}
}
