package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/gds-saude/gds-api/internal/models"
	appErrors "github.com/gds-saude/gds-api/pkg/errors"
)

type roomStore interface {
	List(ctx context.Context) ([]models.RoomSupply, error)
	FindByID(ctx context.Context, id string) (*models.RoomSupply, error)
	SetMaintenance(ctx context.Context, id string, maintenance bool) error
	UpdateOccupancy(ctx context.Context, exec sqlx.ExtContext, id string, status models.RoomStatus, occupant *string, checkedInAt *time.Time, manual bool) error
	Delete(ctx context.Context, id string) error
}

// RoomService manages room supply state: maintenance, manual check-in and
// check-out, removal.
type RoomService struct {
	rooms  roomStore
	cache  summaryCache
	db     sqlx.ExtContext
	logger *zap.Logger
}

// NewRoomService constructs a RoomService.
func NewRoomService(rooms roomStore, cache summaryCache, db sqlx.ExtContext, logger *zap.Logger) *RoomService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomService{rooms: rooms, cache: cache, db: db, logger: logger}
}

// List returns every room.
func (s *RoomService) List(ctx context.Context) ([]models.RoomSupply, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	return rooms, nil
}

// SetMaintenance flips a room's maintenance flag. The change takes effect
// on the next regeneration; current assignments stay in place.
func (s *RoomService) SetMaintenance(ctx context.Context, id string, maintenance bool) (*models.RoomSupply, error) {
	if _, err := s.findRoom(ctx, id); err != nil {
		return nil, err
	}
	if err := s.rooms.SetMaintenance(ctx, id, maintenance); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to set maintenance")
	}
	s.logger.Info("room maintenance updated", zap.String("room_id", id), zap.Bool("maintenance", maintenance))
	return s.findRoom(ctx, id)
}

// CheckIn marks a room occupied by hand. Manual occupancy takes precedence
// over the plan-driven realtime sync until checked out.
func (s *RoomService) CheckIn(ctx context.Context, id, occupantName string) (*models.RoomSupply, error) {
	room, err := s.findRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if room.Maintenance {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "room is under maintenance")
	}

	now := time.Now().UTC()
	if err := s.rooms.UpdateOccupancy(ctx, s.db, id, models.RoomOccupied, &occupantName, &now, true); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check in")
	}
	s.logger.Info("manual check-in", zap.String("room_id", id), zap.String("occupant", occupantName))
	return s.findRoom(ctx, id)
}

// CheckOut releases a room's occupancy, manual or automatic.
func (s *RoomService) CheckOut(ctx context.Context, id string) (*models.RoomSupply, error) {
	room, err := s.findRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if room.Maintenance {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "room is under maintenance")
	}

	if err := s.rooms.UpdateOccupancy(ctx, s.db, id, models.RoomFree, nil, nil, false); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check out")
	}
	s.logger.Info("check-out", zap.String("room_id", id))
	return s.findRoom(ctx, id)
}

// Delete removes a room and its assignments.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	if _, err := s.findRoom(ctx, id); err != nil {
		return err
	}
	if err := s.rooms.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete room")
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, summaryCacheKey); err != nil {
			s.logger.Warn("summary cache invalidation failed", zap.Error(err))
		}
	}
	s.logger.Info("room deleted", zap.String("room_id", id))
	return nil
}

func (s *RoomService) findRoom(ctx context.Context, id string) (*models.RoomSupply, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}
	return room, nil
}
