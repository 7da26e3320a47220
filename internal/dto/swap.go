package dto

import "github.com/gds-saude/gds-api/internal/models"

// SwapOption is one candidate room for a manual reassignment.
type SwapOption struct {
	RoomID      string `json:"roomId"`
	RoomName    string `json:"roomName"`
	Block       string `json:"block"`
	Floor       string `json:"floor"`
	Score       int    `json:"score"`
	Recommended bool   `json:"recommended"`
	IsCurrent   bool   `json:"isCurrent"`
}

// SwapOptionsResponse lists candidate rooms for one assignment, current
// room first, then by score descending.
type SwapOptionsResponse struct {
	AssignmentID string           `json:"assignmentId"`
	DayOfWeek    models.DayOfWeek `json:"dayOfWeek"`
	Shift        models.Shift     `json:"shift"`
	Options      []SwapOption     `json:"options"`
}

// ApplySwapRequest moves an assignment into another room. Force evicts a
// conflicting assignment occupying the target room in the same slot.
type ApplySwapRequest struct {
	RoomID string `json:"roomId" validate:"required"`
	Force  bool   `json:"force"`
}

// ApplySwapResponse reports the executed swap.
type ApplySwapResponse struct {
	AssignmentID string  `json:"assignmentId"`
	RoomID       string  `json:"roomId"`
	EvictedID    *string `json:"evictedAssignmentId,omitempty"`
}
