package dto

// SetMaintenanceRequest toggles a room's maintenance flag. Maintenance
// excludes the room from all matching.
type SetMaintenanceRequest struct {
	Maintenance bool `json:"maintenance"`
}

// CheckInRequest marks a room occupied by hand. Manual state takes
// precedence over the realtime sync.
type CheckInRequest struct {
	OccupantName string `json:"occupantName" validate:"required"`
}
