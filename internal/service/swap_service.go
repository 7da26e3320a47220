package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/gds-saude/gds-api/internal/dto"
	"github.com/gds-saude/gds-api/internal/models"
	appErrors "github.com/gds-saude/gds-api/pkg/errors"
)

type swapAssignmentStore interface {
	FindDetailedByID(ctx context.Context, id string) (*models.AssignmentDetail, error)
	ListBySlot(ctx context.Context, day models.DayOfWeek, shift models.Shift) ([]models.AssignmentDetail, error)
	FindBySlotRoom(ctx context.Context, exec sqlx.ExtContext, day models.DayOfWeek, shift models.Shift, roomID string) (*models.Assignment, error)
	UpdateRoom(ctx context.Context, exec sqlx.ExtContext, id, roomID string) error
	Delete(ctx context.Context, exec sqlx.ExtContext, id string) error
}

type swapRoomStore interface {
	ListActive(ctx context.Context) ([]models.RoomSupply, error)
	FindByID(ctx context.Context, id string) (*models.RoomSupply, error)
}

type swapConflictStore interface {
	Create(ctx context.Context, exec sqlx.ExtContext, conflict *models.Conflict) error
}

// SwapService handles manual reassignment of a placed demand item into
// another room within the same slot.
type SwapService struct {
	assignments swapAssignmentStore
	rooms       swapRoomStore
	conflicts   swapConflictStore
	cache       summaryCache
	tx          txProvider
	scorer      *Scorer
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewSwapService wires the swap workflow.
func NewSwapService(
	assignments swapAssignmentStore,
	rooms swapRoomStore,
	conflicts swapConflictStore,
	cache summaryCache,
	tx txProvider,
	scorer *Scorer,
	metrics *MetricsService,
	logger *zap.Logger,
) *SwapService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SwapService{
		assignments: assignments,
		rooms:       rooms,
		conflicts:   conflicts,
		cache:       cache,
		tx:          tx,
		scorer:      scorer,
		metrics:     metrics,
		logger:      logger,
	}
}

// Options lists candidate rooms for one assignment: the current room first,
// then free rooms of the slot by score descending. Every option scoring
// positive is flagged as recommended.
func (s *SwapService) Options(ctx context.Context, assignmentID string) (*dto.SwapOptionsResponse, error) {
	detail, err := s.assignments.FindDetailedByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}

	slotAssignments, err := s.assignments.ListBySlot(ctx, detail.DayOfWeek, detail.Shift)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load slot occupancy")
	}
	occupied := make(map[string]bool, len(slotAssignments))
	for _, a := range slotAssignments {
		if a.ID != detail.ID {
			occupied[a.RoomID] = true
		}
	}

	rooms, err := s.rooms.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room supply")
	}

	demand := models.SpecialtyDemand{
		ID:               detail.DemandID,
		ProfessionalName: detail.ProfessionalName,
		Specialty:        detail.Specialty,
		SpecialtyID:      detail.SpecialtyID,
		DayOfWeek:        detail.DayOfWeek,
		Shift:            detail.Shift,
	}

	options := make([]dto.SwapOption, 0, len(rooms))
	for _, room := range rooms {
		if occupied[room.ID] {
			continue
		}
		options = append(options, dto.SwapOption{
			RoomID:    room.ID,
			RoomName:  room.DisplayName,
			Block:     room.Block,
			Floor:     room.Floor,
			Score:     s.scorer.Score(demand, room, nil),
			IsCurrent: room.ID == detail.RoomID,
		})
	}

	sort.Slice(options, func(i, j int) bool {
		if options[i].IsCurrent != options[j].IsCurrent {
			return options[i].IsCurrent
		}
		if options[i].Score != options[j].Score {
			return options[i].Score > options[j].Score
		}
		return naturalLess(options[i].RoomID, options[j].RoomID)
	})

	for i := range options {
		options[i].Recommended = options[i].Score > 0
	}

	return &dto.SwapOptionsResponse{
		AssignmentID: detail.ID,
		DayOfWeek:    detail.DayOfWeek,
		Shift:        detail.Shift,
		Options:      options,
	}, nil
}

// Apply moves the assignment into the requested room. If the room is taken
// in the same slot the swap fails with a conflict unless forced; a forced
// swap evicts the occupant and records the eviction as a conflict.
func (s *SwapService) Apply(ctx context.Context, assignmentID string, req dto.ApplySwapRequest) (*dto.ApplySwapResponse, error) {
	detail, err := s.assignments.FindDetailedByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	if detail.RoomID == req.RoomID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "assignment already occupies this room")
	}

	room, err := s.rooms.FindByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}
	if room.Maintenance {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "room is under maintenance")
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin swap transaction")
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var evictedID *string
	occupant, err := s.assignments.FindBySlotRoom(ctx, tx, detail.DayOfWeek, detail.Shift, req.RoomID)
	switch {
	case err == nil:
		if !req.Force {
			return nil, appErrors.Clone(appErrors.ErrConflict, "room already assigned in this slot")
		}
		evicted, derr := s.assignments.FindDetailedByID(ctx, occupant.ID)
		if derr != nil {
			return nil, appErrors.Wrap(derr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load evicted assignment")
		}
		if derr := s.assignments.Delete(ctx, tx, occupant.ID); derr != nil {
			return nil, appErrors.Wrap(derr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to evict assignment")
		}
		score := occupant.Score
		demandID := evicted.DemandID
		if derr := s.conflicts.Create(ctx, tx, &models.Conflict{
			DemandID:         &demandID,
			ProfessionalName: evicted.ProfessionalName,
			Specialty:        evicted.Specialty,
			DayOfWeek:        evicted.DayOfWeek,
			Shift:            evicted.Shift,
			Reason:           models.ReasonSwapEvicted,
			BestScore:        &score,
			CreatedAt:        time.Now().UTC(),
		}); derr != nil {
			return nil, appErrors.Wrap(derr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record eviction")
		}
		evictedID = &occupant.ID
	case errors.Is(err, sql.ErrNoRows):
		// Target room is free in this slot.
	default:
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check slot occupancy")
	}

	if err := s.assignments.UpdateRoom(ctx, tx, assignmentID, req.RoomID); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to move assignment")
	}

	if err := tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit swap")
	}
	committed = true

	if s.cache != nil {
		if err := s.cache.Delete(ctx, summaryCacheKey); err != nil {
			s.logger.Warn("summary cache invalidation failed", zap.Error(err))
		}
	}
	s.metrics.RecordSwap(evictedID != nil)
	s.logger.Info("swap applied",
		zap.String("assignment_id", assignmentID),
		zap.String("room_id", req.RoomID),
		zap.Bool("forced", evictedID != nil),
	)

	return &dto.ApplySwapResponse{
		AssignmentID: assignmentID,
		RoomID:       req.RoomID,
		EvictedID:    evictedID,
	}, nil
}
