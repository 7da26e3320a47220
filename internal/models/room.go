package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// RoomStatus reflects live occupancy, not the weekly plan.
type RoomStatus string

const (
	RoomFree        RoomStatus = "FREE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

// Feature flags carried by rooms. Free-form strings from import are kept
// alongside these well-known markers.
const (
	FeatureRestrictedSpecialty = "RESTRICTED_SPECIALTY"
	FeatureClosedForWorks      = "CLOSED_FOR_WORKS"
)

// RoomSupply is a physical room available for scheduling.
type RoomSupply struct {
	ID                 string         `db:"id" json:"id"`
	DisplayName        string         `db:"display_name" json:"display_name"`
	Block              string         `db:"block" json:"block"`
	Floor              string         `db:"floor" json:"floor"`
	PreferredSpecialty string         `db:"preferred_specialty" json:"preferred_specialty"`
	SpecialtyID        *string        `db:"specialty_id" json:"specialty_id,omitempty"`
	Features           pq.StringArray `db:"features" json:"features"`
	Maintenance        bool           `db:"maintenance" json:"maintenance"`
	Status             RoomStatus     `db:"status" json:"status"`
	OccupantName       *string        `db:"occupant_name" json:"occupant_name,omitempty"`
	CheckedInAt        *time.Time     `db:"checked_in_at" json:"checked_in_at,omitempty"`
	ManualCheckIn      bool           `db:"manual_check_in" json:"manual_check_in"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updated_at"`
}

// HasFeature reports whether the room carries the given flag.
func (r RoomSupply) HasFeature(flag string) bool {
	for _, f := range r.Features {
		if strings.EqualFold(strings.TrimSpace(f), flag) {
			return true
		}
	}
	return false
}

// Restricted rooms are single-purpose: usable only by their exact
// preferred specialty.
func (r RoomSupply) Restricted() bool {
	return r.HasFeature(FeatureRestrictedSpecialty)
}

// Closed rooms stay in supply but never count toward zone clustering.
func (r RoomSupply) Closed() bool {
	return r.HasFeature(FeatureClosedForWorks)
}

// GroundFloor reports whether the room sits at street level. Imports encode
// the ground floor as "0" or the literal "térreo".
func (r RoomSupply) GroundFloor() bool {
	floor := strings.ToLower(strings.TrimSpace(r.Floor))
	return floor == "0" || strings.Contains(floor, "térreo") || strings.Contains(floor, "terreo")
}

// Unmapped reports whether the room has no specialty affinity at all.
func (r RoomSupply) Unmapped() bool {
	return r.SpecialtyID == nil && strings.TrimSpace(r.PreferredSpecialty) == ""
}

// Zone returns the room's (block, floor) location pair.
func (r RoomSupply) Zone() Zone {
	return Zone{Block: r.Block, Floor: r.Floor}
}

// Zone is a (block, floor) location pair.
type Zone struct {
	Block string `json:"block"`
	Floor string `json:"floor"`
}

// Label renders the human-readable location used in summaries.
func (z Zone) Label() string {
	return fmt.Sprintf("Bloco %s - %s", z.Block, z.Floor)
}
