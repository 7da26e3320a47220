package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gds-saude/gds-api/internal/models"
)

// SpecialtyRepository reads the optional canonical specialty catalogue.
type SpecialtyRepository struct {
	db *sqlx.DB
}

// NewSpecialtyRepository constructs a SpecialtyRepository.
func NewSpecialtyRepository(db *sqlx.DB) *SpecialtyRepository {
	return &SpecialtyRepository{db: db}
}

// List returns the full catalogue ordered by name.
func (r *SpecialtyRepository) List(ctx context.Context) ([]models.Specialty, error) {
	const query = `SELECT id, name FROM specialties ORDER BY name ASC`
	var specialties []models.Specialty
	if err := r.db.SelectContext(ctx, &specialties, query); err != nil {
		return nil, fmt.Errorf("list specialties: %w", err)
	}
	return specialties, nil
}
