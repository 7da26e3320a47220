package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gds-saude/gds-api/internal/models"
	appErrors "github.com/gds-saude/gds-api/pkg/errors"
)

type roomStoreStub struct {
	rooms       map[string]models.RoomSupply
	maintenance map[string]bool
	occupancy   []occupancyWrite
	deleted     []string
}

func newRoomStoreStub(rooms ...models.RoomSupply) *roomStoreStub {
	s := &roomStoreStub{rooms: map[string]models.RoomSupply{}, maintenance: map[string]bool{}}
	for _, r := range rooms {
		s.rooms[r.ID] = r
	}
	return s
}

func (s *roomStoreStub) List(ctx context.Context) ([]models.RoomSupply, error) {
	out := make([]models.RoomSupply, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (s *roomStoreStub) FindByID(ctx context.Context, id string) (*models.RoomSupply, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &room, nil
}

func (s *roomStoreStub) SetMaintenance(ctx context.Context, id string, maintenance bool) error {
	room := s.rooms[id]
	room.Maintenance = maintenance
	s.rooms[id] = room
	s.maintenance[id] = maintenance
	return nil
}

func (s *roomStoreStub) UpdateOccupancy(ctx context.Context, exec sqlx.ExtContext, id string, status models.RoomStatus, occupant *string, checkedInAt *time.Time, manual bool) error {
	room := s.rooms[id]
	room.Status = status
	room.OccupantName = occupant
	room.CheckedInAt = checkedInAt
	room.ManualCheckIn = manual
	s.rooms[id] = room
	s.occupancy = append(s.occupancy, occupancyWrite{roomID: id, status: status, occupant: occupant, manual: manual})
	return nil
}

func (s *roomStoreStub) Delete(ctx context.Context, id string) error {
	delete(s.rooms, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func TestRoomCheckInMarksManualOccupancy(t *testing.T) {
	store := newRoomStoreStub(roomFixture("r1", "Sala 1", "A", "1", "Cardiologia"))
	svc := NewRoomService(store, newCacheStub(), nil, nil)

	room, err := svc.CheckIn(context.Background(), "r1", "Enf. Clara")
	require.NoError(t, err)
	assert.Equal(t, models.RoomOccupied, room.Status)
	assert.True(t, room.ManualCheckIn)
	require.NotNil(t, room.OccupantName)
	assert.Equal(t, "Enf. Clara", *room.OccupantName)
}

func TestRoomCheckInRejectsMaintenanceRoom(t *testing.T) {
	down := roomFixture("r1", "Sala 1", "A", "1", "Cardiologia")
	down.Maintenance = true
	svc := NewRoomService(newRoomStoreStub(down), newCacheStub(), nil, nil)

	_, err := svc.CheckIn(context.Background(), "r1", "Enf. Clara")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPreconditionFailed.Code, appErrors.FromError(err).Code)
}

func TestRoomCheckOutReleasesOccupancy(t *testing.T) {
	occupant := "Enf. Clara"
	busy := roomFixture("r1", "Sala 1", "A", "1", "Cardiologia")
	busy.Status = models.RoomOccupied
	busy.OccupantName = &occupant
	busy.ManualCheckIn = true
	store := newRoomStoreStub(busy)
	svc := NewRoomService(store, newCacheStub(), nil, nil)

	room, err := svc.CheckOut(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, models.RoomFree, room.Status)
	assert.Nil(t, room.OccupantName)
	assert.False(t, room.ManualCheckIn)
}

func TestRoomSetMaintenance(t *testing.T) {
	store := newRoomStoreStub(roomFixture("r1", "Sala 1", "A", "1", "Cardiologia"))
	svc := NewRoomService(store, newCacheStub(), nil, nil)

	room, err := svc.SetMaintenance(context.Background(), "r1", true)
	require.NoError(t, err)
	assert.True(t, room.Maintenance)
	assert.True(t, store.maintenance["r1"])
}

func TestRoomDeleteInvalidatesSummaryCache(t *testing.T) {
	store := newRoomStoreStub(roomFixture("r1", "Sala 1", "A", "1", "Cardiologia"))
	cache := newCacheStub()
	svc := NewRoomService(store, cache, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "r1"))
	assert.Equal(t, []string{"r1"}, store.deleted)
	assert.Contains(t, cache.deleted, summaryCacheKey)
}

func TestRoomOperationsOnUnknownRoom(t *testing.T) {
	svc := NewRoomService(newRoomStoreStub(), newCacheStub(), nil, nil)

	_, err := svc.CheckIn(context.Background(), "missing", "x")
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	_, err = svc.SetMaintenance(context.Background(), "missing", true)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	err = svc.Delete(context.Background(), "missing")
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
