package models

import (
	"strings"
	"time"
)

// ResourceKind classifies who fills a duty slot.
type ResourceKind string

const (
	ResourceStaff    ResourceKind = "STAFF"
	ResourceResident ResourceKind = "RESIDENT"
	ResourceExtra    ResourceKind = "EXTRA"
)

// DemandOrigin records how a demand entered the weekly template.
type DemandOrigin string

const (
	OriginImport DemandOrigin = "IMPORT"
	OriginManual DemandOrigin = "MANUAL"
)

// SpecialtyDemand is one recurring weekly duty slot requiring a room.
// Records are immutable once created; the scheduler never mutates them.
type SpecialtyDemand struct {
	ID               string       `db:"id" json:"id"`
	ProfessionalName string       `db:"professional_name" json:"professional_name"`
	Specialty        string       `db:"specialty" json:"specialty"`
	SpecialtyID      *string      `db:"specialty_id" json:"specialty_id,omitempty"`
	ResourceKind     ResourceKind `db:"resource_kind" json:"resource_kind"`
	DayOfWeek        DayOfWeek    `db:"day_of_week" json:"day_of_week"`
	Shift            Shift        `db:"shift" json:"shift"`
	Origin           DemandOrigin `db:"origin" json:"origin"`
	CreatedAt        time.Time    `db:"created_at" json:"created_at"`
}

// Unmapped reports whether the demand carries no usable specialty at all:
// no canonical id and a blank raw label. Such demand only competes for
// equally unmapped rooms.
func (d SpecialtyDemand) Unmapped() bool {
	return d.SpecialtyID == nil && strings.TrimSpace(d.Specialty) == ""
}

// DemandFilter describes query params for listing demand.
type DemandFilter struct {
	DayOfWeek string
	Shift     string
	Specialty string
	Origin    string
}
