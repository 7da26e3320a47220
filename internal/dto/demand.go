package dto

// CreateDemandRequest adds an extra duty slot to the weekly template, e.g.
// a resident who arrived after the import. The scheduler picks it up on the
// next regeneration.
type CreateDemandRequest struct {
	ProfessionalName string `json:"professionalName" validate:"required"`
	Specialty        string `json:"specialty" validate:"required"`
	ResourceKind     string `json:"resourceKind" validate:"omitempty,oneof=STAFF RESIDENT EXTRA"`
	DayOfWeek        string `json:"dayOfWeek" validate:"required"`
	Shift            string `json:"shift" validate:"required"`
}
