package models

import "time"

// ConflictReason explains why a demand item could not be placed.
type ConflictReason string

const (
	// ReasonCapacityExhausted marks demand skipped because every active room
	// in the slot was already occupied; no scoring was attempted.
	ReasonCapacityExhausted ConflictReason = "CAPACITY_EXHAUSTED"
	// ReasonNoCompatibleRoom marks demand whose best candidate stayed below
	// the acceptance threshold. BestScore keeps the attempt for audit.
	ReasonNoCompatibleRoom ConflictReason = "NO_COMPATIBLE_ROOM"
	// ReasonSwapEvicted marks an assignment displaced by a forced manual swap.
	ReasonSwapEvicted ConflictReason = "SWAP_EVICTED"
)

// Conflict is unresolved demand surfaced to the operator. Conflicts are
// always user-visible data, never errors, and are never retried
// automatically.
type Conflict struct {
	ID               string         `db:"id" json:"id"`
	DemandID         *string        `db:"demand_id" json:"demand_id,omitempty"`
	ProfessionalName string         `db:"professional_name" json:"professional_name"`
	Specialty        string         `db:"specialty" json:"specialty"`
	DayOfWeek        DayOfWeek      `db:"day_of_week" json:"day_of_week"`
	Shift            Shift          `db:"shift" json:"shift"`
	Reason           ConflictReason `db:"reason" json:"reason"`
	BestScore        *int           `db:"best_score" json:"best_score,omitempty"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
}
