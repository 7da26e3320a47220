package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gds-saude/gds-api/internal/models"
)

// DemandRepository manages persistence for weekly duty-slot demand.
type DemandRepository struct {
	db *sqlx.DB
}

// NewDemandRepository constructs a DemandRepository.
func NewDemandRepository(db *sqlx.DB) *DemandRepository {
	return &DemandRepository{db: db}
}

const demandColumns = "id, professional_name, specialty, specialty_id, resource_kind, day_of_week, shift, origin, created_at"

// List returns demand matching the filter, ordered stably by creation time
// then id so regeneration input order is reproducible.
func (r *DemandRepository) List(ctx context.Context, filter models.DemandFilter) ([]models.SpecialtyDemand, error) {
	base := "FROM demands WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.DayOfWeek != "" {
		conditions = append(conditions, fmt.Sprintf("day_of_week = $%d", len(args)+1))
		args = append(args, filter.DayOfWeek)
	}
	if filter.Shift != "" {
		conditions = append(conditions, fmt.Sprintf("shift = $%d", len(args)+1))
		args = append(args, filter.Shift)
	}
	if filter.Specialty != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(specialty) LIKE $%d", len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Specialty)+"%")
	}
	if filter.Origin != "" {
		conditions = append(conditions, fmt.Sprintf("origin = $%d", len(args)+1))
		args = append(args, filter.Origin)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY created_at ASC, id ASC", demandColumns, base)
	var demands []models.SpecialtyDemand
	if err := r.db.SelectContext(ctx, &demands, query, args...); err != nil {
		return nil, fmt.Errorf("list demands: %w", err)
	}
	return demands, nil
}

// FindByID loads one demand item.
func (r *DemandRepository) FindByID(ctx context.Context, id string) (*models.SpecialtyDemand, error) {
	query := fmt.Sprintf("SELECT %s FROM demands WHERE id = $1", demandColumns)
	var demand models.SpecialtyDemand
	if err := r.db.GetContext(ctx, &demand, query, id); err != nil {
		return nil, err
	}
	return &demand, nil
}

// Create inserts a new demand record.
func (r *DemandRepository) Create(ctx context.Context, demand *models.SpecialtyDemand) error {
	if demand.ID == "" {
		demand.ID = uuid.NewString()
	}
	if demand.CreatedAt.IsZero() {
		demand.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO demands (id, professional_name, specialty, specialty_id, resource_kind, day_of_week, shift, origin, created_at)
		VALUES (:id, :professional_name, :specialty, :specialty_id, :resource_kind, :day_of_week, :shift, :origin, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, demand); err != nil {
		return fmt.Errorf("create demand: %w", err)
	}
	return nil
}

// DeleteByOrigin removes every demand of the given origin. Used by
// re-imports, which replace imported demand wholesale.
func (r *DemandRepository) DeleteByOrigin(ctx context.Context, origin models.DemandOrigin) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM demands WHERE origin = $1`, origin); err != nil {
		return fmt.Errorf("delete demands by origin: %w", err)
	}
	return nil
}
