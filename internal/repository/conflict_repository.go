package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gds-saude/gds-api/internal/models"
)

// ConflictRepository persists unresolved demand for operator review.
type ConflictRepository struct {
	db *sqlx.DB
}

// NewConflictRepository constructs a ConflictRepository.
func NewConflictRepository(db *sqlx.DB) *ConflictRepository {
	return &ConflictRepository{db: db}
}

const conflictColumns = "id, demand_id, professional_name, specialty, day_of_week, shift, reason, best_score, created_at"

// List returns all recorded conflicts, newest first.
func (r *ConflictRepository) List(ctx context.Context) ([]models.Conflict, error) {
	query := fmt.Sprintf("SELECT %s FROM conflicts ORDER BY created_at DESC, id ASC", conflictColumns)
	var conflicts []models.Conflict
	if err := r.db.SelectContext(ctx, &conflicts, query); err != nil {
		return nil, fmt.Errorf("list conflicts: %w", err)
	}
	return conflicts, nil
}

// DeleteAll truncates conflicts inside the regeneration transaction.
func (r *ConflictRepository) DeleteAll(ctx context.Context, exec sqlx.ExtContext) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM conflicts`); err != nil {
		return fmt.Errorf("delete conflicts: %w", err)
	}
	return nil
}

// BulkCreate inserts conflicts inside a caller-owned transaction.
func (r *ConflictRepository) BulkCreate(ctx context.Context, exec sqlx.ExtContext, conflicts []models.Conflict) error {
	now := time.Now().UTC()
	const query = `INSERT INTO conflicts (id, demand_id, professional_name, specialty, day_of_week, shift, reason, best_score, created_at)
		VALUES (:id, :demand_id, :professional_name, :specialty, :day_of_week, :shift, :reason, :best_score, :created_at)`
	for i := range conflicts {
		payload := conflicts[i]
		if payload.ID == "" {
			payload.ID = uuid.NewString()
		}
		if payload.CreatedAt.IsZero() {
			payload.CreatedAt = now
		}
		if _, err := sqlx.NamedExecContext(ctx, exec, query, &payload); err != nil {
			return fmt.Errorf("bulk insert conflict: %w", err)
		}
		conflicts[i] = payload
	}
	return nil
}

// Create inserts a single conflict, e.g. an assignment evicted by a forced
// swap.
func (r *ConflictRepository) Create(ctx context.Context, exec sqlx.ExtContext, conflict *models.Conflict) error {
	if conflict.ID == "" {
		conflict.ID = uuid.NewString()
	}
	if conflict.CreatedAt.IsZero() {
		conflict.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO conflicts (id, demand_id, professional_name, specialty, day_of_week, shift, reason, best_score, created_at)
		VALUES (:id, :demand_id, :professional_name, :specialty, :day_of_week, :shift, :reason, :best_score, :created_at)`
	if _, err := sqlx.NamedExecContext(ctx, exec, query, conflict); err != nil {
		return fmt.Errorf("create conflict: %w", err)
	}
	return nil
}
