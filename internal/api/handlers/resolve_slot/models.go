package resolve_slot

import (
	"time"

	resolveSlot "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/usecase/resolve_slot"
)

// ResolveSlotRequest is the HTTP body for resolving a slot sub-range.
type ResolveSlotRequest struct {
	SlotID       string `json:"slotId"`
	TutorID      string `json:"tutorId"`
	StudentID    string `json:"studentId"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *ResolveSlotRequest) ToUseCaseRequest() *resolveSlot.Request {
	return &resolveSlot.Request{
		SlotID:       r.SlotID,
		TutorID:      r.TutorID,
		StudentID:    r.StudentID,
		StartMinutes: r.StartMinutes,
		EndMinutes:   r.EndMinutes,
	}
}

// ResolveSlotResponse carries the resolved occurrence as RFC3339 timestamps.
type ResolveSlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse converts the use case result into the HTTP shape.
func FromUseCaseResponse(resp *resolveSlot.Response) *ResolveSlotResponse {
	return &ResolveSlotResponse{
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
	}
}
