package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gds-saude/gds-api/internal/models"
)

// AssignmentRepository manages the persisted weekly plan.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs an AssignmentRepository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

const assignmentDetailQuery = `SELECT a.id, a.room_id, a.demand_id, a.day_of_week, a.shift, a.score, a.created_at,
	d.professional_name, d.specialty, d.specialty_id,
	r.display_name AS room_name, r.block, r.floor
	FROM assignments a
	JOIN demands d ON d.id = a.demand_id
	JOIN rooms r ON r.id = a.room_id`

// ListDetailed returns every assignment joined with demand and room,
// ordered deterministically.
func (r *AssignmentRepository) ListDetailed(ctx context.Context) ([]models.AssignmentDetail, error) {
	query := assignmentDetailQuery + " ORDER BY a.day_of_week ASC, a.shift ASC, a.room_id ASC"
	var assignments []models.AssignmentDetail
	if err := r.db.SelectContext(ctx, &assignments, query); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

// ListBySlot returns assignments for one (day, shift) cell.
func (r *AssignmentRepository) ListBySlot(ctx context.Context, day models.DayOfWeek, shift models.Shift) ([]models.AssignmentDetail, error) {
	query := assignmentDetailQuery + " WHERE a.day_of_week = $1 AND a.shift = $2 ORDER BY a.room_id ASC"
	var assignments []models.AssignmentDetail
	if err := r.db.SelectContext(ctx, &assignments, query, day, shift); err != nil {
		return nil, fmt.Errorf("list assignments by slot: %w", err)
	}
	return assignments, nil
}

// FindDetailedByID loads one assignment with its demand and room.
func (r *AssignmentRepository) FindDetailedByID(ctx context.Context, id string) (*models.AssignmentDetail, error) {
	query := assignmentDetailQuery + " WHERE a.id = $1"
	var assignment models.AssignmentDetail
	if err := r.db.GetContext(ctx, &assignment, query, id); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// FindBySlotRoom returns the assignment occupying a room in a slot, if any.
func (r *AssignmentRepository) FindBySlotRoom(ctx context.Context, exec sqlx.ExtContext, day models.DayOfWeek, shift models.Shift, roomID string) (*models.Assignment, error) {
	const query = `SELECT id, room_id, demand_id, day_of_week, shift, score, created_at FROM assignments WHERE day_of_week = $1 AND shift = $2 AND room_id = $3`
	var assignment models.Assignment
	if err := sqlx.GetContext(ctx, exec, &assignment, query, day, shift, roomID); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// DeleteAll truncates the plan inside the regeneration transaction.
func (r *AssignmentRepository) DeleteAll(ctx context.Context, exec sqlx.ExtContext) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM assignments`); err != nil {
		return fmt.Errorf("delete assignments: %w", err)
	}
	return nil
}

// BulkCreate inserts the rebuilt plan inside the regeneration transaction.
func (r *AssignmentRepository) BulkCreate(ctx context.Context, exec sqlx.ExtContext, assignments []models.Assignment) error {
	now := time.Now().UTC()
	const query = `INSERT INTO assignments (id, room_id, demand_id, day_of_week, shift, score, created_at)
		VALUES (:id, :room_id, :demand_id, :day_of_week, :shift, :score, :created_at)`
	for i := range assignments {
		payload := assignments[i]
		if payload.ID == "" {
			payload.ID = uuid.NewString()
		}
		if payload.CreatedAt.IsZero() {
			payload.CreatedAt = now
		}
		if _, err := sqlx.NamedExecContext(ctx, exec, query, &payload); err != nil {
			return fmt.Errorf("bulk insert assignment: %w", err)
		}
		assignments[i] = payload
	}
	return nil
}

// UpdateRoom moves an assignment to another room. The score is kept: it
// documents the original placement's rationale.
func (r *AssignmentRepository) UpdateRoom(ctx context.Context, exec sqlx.ExtContext, id, roomID string) error {
	if _, err := exec.ExecContext(ctx, `UPDATE assignments SET room_id = $2 WHERE id = $1`, id, roomID); err != nil {
		return fmt.Errorf("update assignment room: %w", err)
	}
	return nil
}

// Delete removes one assignment inside a caller-owned transaction.
func (r *AssignmentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id string) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM assignments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}
