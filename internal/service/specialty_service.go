package service

import (
	"context"

	"github.com/gds-saude/gds-api/internal/models"
	appErrors "github.com/gds-saude/gds-api/pkg/errors"
)

type specialtyStore interface {
	List(ctx context.Context) ([]models.Specialty, error)
}

// SpecialtyService reads the canonical specialty catalogue. The catalogue is
// optional reference data: demand and rooms fall back to raw labels where no
// canonical id resolves.
type SpecialtyService struct {
	specialties specialtyStore
}

// NewSpecialtyService constructs a SpecialtyService.
func NewSpecialtyService(specialties specialtyStore) *SpecialtyService {
	return &SpecialtyService{specialties: specialties}
}

// List returns the catalogue ordered by name.
func (s *SpecialtyService) List(ctx context.Context) ([]models.Specialty, error) {
	specialties, err := s.specialties.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list specialties")
	}
	return specialties, nil
}
