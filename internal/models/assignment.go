package models

import "time"

// Assignment binds one demand item to one room for its weekly slot.
// Day and shift are denormalized from the demand at creation time for fast
// slot lookups. For a given (day, shift) each room id and each demand id
// appears in at most one assignment.
type Assignment struct {
	ID        string    `db:"id" json:"id"`
	RoomID    string    `db:"room_id" json:"room_id"`
	DemandID  string    `db:"demand_id" json:"demand_id"`
	DayOfWeek DayOfWeek `db:"day_of_week" json:"day_of_week"`
	Shift     Shift     `db:"shift" json:"shift"`
	Score     int       `db:"score" json:"score"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AssignmentDetail joins an assignment with its demand and room for
// read paths (summary, realtime, swaps).
type AssignmentDetail struct {
	Assignment
	ProfessionalName string  `db:"professional_name" json:"professional_name"`
	Specialty        string  `db:"specialty" json:"specialty"`
	SpecialtyID      *string `db:"specialty_id" json:"specialty_id,omitempty"`
	RoomName         string  `db:"room_name" json:"room_name"`
	Block            string  `db:"block" json:"block"`
	Floor            string  `db:"floor" json:"floor"`
}
