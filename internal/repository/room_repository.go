package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gds-saude/gds-api/internal/models"
)

// RoomRepository manages persistence for physical room supply.
type RoomRepository struct {
	db *sqlx.DB
}

// NewRoomRepository constructs a RoomRepository.
func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomColumns = "id, display_name, block, floor, preferred_specialty, specialty_id, features, maintenance, status, occupant_name, checked_in_at, manual_check_in, created_at, updated_at"

// List returns every room ordered by id.
func (r *RoomRepository) List(ctx context.Context) ([]models.RoomSupply, error) {
	query := fmt.Sprintf("SELECT %s FROM rooms ORDER BY id ASC", roomColumns)
	var rooms []models.RoomSupply
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// ListActive returns rooms eligible for matching (maintenance excluded),
// ordered by id for deterministic scans.
func (r *RoomRepository) ListActive(ctx context.Context) ([]models.RoomSupply, error) {
	query := fmt.Sprintf("SELECT %s FROM rooms WHERE maintenance = FALSE ORDER BY id ASC", roomColumns)
	var rooms []models.RoomSupply
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list active rooms: %w", err)
	}
	return rooms, nil
}

// FindByID loads a room by id.
func (r *RoomRepository) FindByID(ctx context.Context, id string) (*models.RoomSupply, error) {
	query := fmt.Sprintf("SELECT %s FROM rooms WHERE id = $1", roomColumns)
	var room models.RoomSupply
	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		return nil, err
	}
	return &room, nil
}

// SetMaintenance flips the maintenance flag. Rooms under maintenance are
// excluded from all matching and left untouched by the realtime sync.
func (r *RoomRepository) SetMaintenance(ctx context.Context, id string, maintenance bool) error {
	status := models.RoomFree
	if maintenance {
		status = models.RoomMaintenance
	}
	const query = `UPDATE rooms SET maintenance = $2, status = $3, occupant_name = NULL, checked_in_at = NULL, manual_check_in = FALSE, updated_at = $4 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, maintenance, status, time.Now().UTC()); err != nil {
		return fmt.Errorf("set room maintenance: %w", err)
	}
	return nil
}

// UpdateOccupancy writes the live occupancy fields of one room.
func (r *RoomRepository) UpdateOccupancy(ctx context.Context, exec sqlx.ExtContext, id string, status models.RoomStatus, occupant *string, checkedInAt *time.Time, manual bool) error {
	const query = `UPDATE rooms SET status = $2, occupant_name = $3, checked_in_at = $4, manual_check_in = $5, updated_at = $6 WHERE id = $1`
	if _, err := exec.ExecContext(ctx, query, id, status, occupant, checkedInAt, manual, time.Now().UTC()); err != nil {
		return fmt.Errorf("update room occupancy: %w", err)
	}
	return nil
}

// Delete removes a room. Its assignments go with it.
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete room: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM assignments WHERE room_id = $1`, id); err != nil {
		return fmt.Errorf("delete room assignments: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete room: %w", err)
	}
	return nil
}
