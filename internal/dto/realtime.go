package dto

import (
	"time"

	"github.com/gds-saude/gds-api/internal/models"
)

// SlotInfo identifies the live (day, shift) cell, if any shift is active.
type SlotInfo struct {
	Day   models.DayOfWeek `json:"day"`
	Shift models.Shift     `json:"shift"`
	Time  string           `json:"time"`
	Date  string           `json:"date"`
}

// RoomStatusView is the live state of one room after synchronisation.
type RoomStatusView struct {
	RoomID       string            `json:"roomId"`
	RoomName     string            `json:"roomName"`
	Block        string            `json:"block"`
	Floor        string            `json:"floor"`
	Status       models.RoomStatus `json:"status"`
	OccupantName *string           `json:"occupant,omitempty"`
	Specialty    string            `json:"specialty,omitempty"`
	CheckedInAt  *time.Time        `json:"checkedInAt,omitempty"`
	Manual       bool              `json:"manual"`
}

// RealtimeStats counts rooms per live status.
type RealtimeStats struct {
	Free        int `json:"free"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
}

// RealtimeStatusResponse projects the weekly plan onto right-now occupancy.
// Slot is nil outside every shift window.
type RealtimeStatusResponse struct {
	Slot  *SlotInfo        `json:"slot"`
	Rooms []RoomStatusView `json:"rooms"`
	Stats RealtimeStats    `json:"stats"`
}
