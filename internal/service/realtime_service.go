package service

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/gds-saude/gds-api/internal/dto"
	"github.com/gds-saude/gds-api/internal/models"
	appErrors "github.com/gds-saude/gds-api/pkg/errors"
)

type realtimeRoomStore interface {
	List(ctx context.Context) ([]models.RoomSupply, error)
	UpdateOccupancy(ctx context.Context, exec sqlx.ExtContext, id string, status models.RoomStatus, occupant *string, checkedInAt *time.Time, manual bool) error
}

type slotAssignmentLister interface {
	ListBySlot(ctx context.Context, day models.DayOfWeek, shift models.Shift) ([]models.AssignmentDetail, error)
}

// RealtimeService projects the weekly plan onto live room occupancy. Each
// Status call reconciles stored room state with the slot active right now.
type RealtimeService struct {
	rooms       realtimeRoomStore
	assignments slotAssignmentLister
	calendar    *FacilityCalendar
	db          sqlx.ExtContext
	logger      *zap.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewRealtimeService wires the realtime projection.
func NewRealtimeService(
	rooms realtimeRoomStore,
	assignments slotAssignmentLister,
	calendar *FacilityCalendar,
	db sqlx.ExtContext,
	logger *zap.Logger,
) *RealtimeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RealtimeService{
		rooms:       rooms,
		assignments: assignments,
		calendar:    calendar,
		db:          db,
		logger:      logger,
		now:         calendar.Now,
	}
}

// Status reconciles and returns live occupancy. Reconciliation rules, in
// precedence order: maintenance rooms are untouched, manual check-ins win
// over the plan, planned assignments for the live slot mark rooms occupied,
// everything else is free. Writes happen only on state changes, so repeated
// calls within one slot are idempotent.
func (s *RealtimeService) Status(ctx context.Context) (*dto.RealtimeStatusResponse, error) {
	return s.StatusAt(ctx, s.now())
}

// StatusAt reconciles against an explicit instant instead of the facility
// clock, so the projection can be inspected for an arbitrary moment.
func (s *RealtimeService) StatusAt(ctx context.Context, now time.Time) (*dto.RealtimeStatusResponse, error) {
	now = now.In(s.calendar.loc)
	slot := s.calendar.SlotAt(now)

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load rooms")
	}

	planned := make(map[string]models.AssignmentDetail)
	if slot != nil {
		assignments, err := s.assignments.ListBySlot(ctx, slot.Day, slot.Shift)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load slot assignments")
		}
		for _, a := range assignments {
			planned[a.RoomID] = a
		}
	}

	views := make([]dto.RoomStatusView, 0, len(rooms))
	var stats dto.RealtimeStats

	for _, room := range rooms {
		view := dto.RoomStatusView{
			RoomID:   room.ID,
			RoomName: room.DisplayName,
			Block:    room.Block,
			Floor:    room.Floor,
		}

		switch {
		case room.Maintenance:
			view.Status = models.RoomMaintenance
			stats.Maintenance++

		case room.ManualCheckIn && room.Status == models.RoomOccupied:
			view.Status = models.RoomOccupied
			view.OccupantName = room.OccupantName
			view.CheckedInAt = room.CheckedInAt
			view.Manual = true
			stats.Occupied++

		default:
			assignment, assigned := planned[room.ID]
			if assigned {
				occupant := assignment.ProfessionalName
				checkedInAt := room.CheckedInAt
				if room.Status != models.RoomOccupied || room.OccupantName == nil || *room.OccupantName != occupant {
					at := now.UTC()
					checkedInAt = &at
					if err := s.rooms.UpdateOccupancy(ctx, s.db, room.ID, models.RoomOccupied, &occupant, checkedInAt, false); err != nil {
						return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark room occupied")
					}
				}
				view.Status = models.RoomOccupied
				view.OccupantName = &occupant
				view.Specialty = assignment.Specialty
				view.CheckedInAt = checkedInAt
				stats.Occupied++
				break
			}

			// No plan for this room right now: release stale automatic
			// occupancy, never a manual one.
			if room.Status == models.RoomOccupied {
				if err := s.rooms.UpdateOccupancy(ctx, s.db, room.ID, models.RoomFree, nil, nil, false); err != nil {
					return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to release room")
				}
			}
			view.Status = models.RoomFree
			stats.Free++
		}

		views = append(views, view)
	}

	var slotInfo *dto.SlotInfo
	if slot != nil {
		slotInfo = &dto.SlotInfo{
			Day:   slot.Day,
			Shift: slot.Shift,
			Time:  now.Format("15:04"),
			Date:  now.Format("2006-01-02"),
		}
	}

	return &dto.RealtimeStatusResponse{
		Slot:  slotInfo,
		Rooms: views,
		Stats: stats,
	}, nil
}
