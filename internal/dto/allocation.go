package dto

import (
	"time"

	"github.com/gds-saude/gds-api/internal/models"
)

// AssignmentView is one placed demand item in a regeneration response.
type AssignmentView struct {
	AssignmentID     string           `json:"assignmentId"`
	ProfessionalName string           `json:"professional"`
	Specialty        string           `json:"specialty"`
	RoomID           string           `json:"roomId"`
	RoomName         string           `json:"roomName"`
	Block            string           `json:"block"`
	Floor            string           `json:"floor"`
	DayOfWeek        models.DayOfWeek `json:"dayOfWeek"`
	Shift            models.Shift     `json:"shift"`
	Score            int              `json:"score"`
}

// ConflictView is unplaced demand surfaced to the operator.
type ConflictView struct {
	ProfessionalName string                `json:"professional"`
	Specialty        string                `json:"specialty"`
	DayOfWeek        models.DayOfWeek      `json:"dayOfWeek"`
	Shift            models.Shift          `json:"shift"`
	Reason           models.ConflictReason `json:"reason"`
	BestScore        *int                  `json:"bestScore,omitempty"`
}

// SummaryGroup aggregates the final assignments of one specialty.
type SummaryGroup struct {
	Specialty     string   `json:"specialty"`
	RoomCount     int      `json:"roomCount"`
	Rooms         []string `json:"rooms"`
	Locations     []string `json:"locations"`
	Professionals int      `json:"professionals"`
}

// RegenerateStats summarises one full regeneration run.
type RegenerateStats struct {
	DemandTotal    int           `json:"demandTotal"`
	Assigned       int           `json:"assigned"`
	Conflicted     int           `json:"conflicted"`
	ActiveRooms    int           `json:"activeRooms"`
	Duration       time.Duration `json:"-"`
	DurationMillis int64         `json:"durationMs"`
}

// RegenerateResponse is the full outcome of a schedule rebuild.
type RegenerateResponse struct {
	Assignments []AssignmentView `json:"assignments"`
	Conflicts   []ConflictView   `json:"conflicts"`
	Summary     []SummaryGroup   `json:"summary"`
	Stats       RegenerateStats  `json:"stats"`
}

// CurrentSummaryResponse is the read-only projection of the persisted plan.
type CurrentSummaryResponse struct {
	Summary     []SummaryGroup   `json:"summary"`
	Assignments []AssignmentView `json:"assignments"`
	GeneratedAt time.Time        `json:"generatedAt"`
}
