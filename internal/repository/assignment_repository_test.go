package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gds-saude/gds-api/internal/models"
)

func assignmentDetailRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "room_id", "demand_id", "day_of_week", "shift", "score", "created_at",
		"professional_name", "specialty", "specialty_id", "room_name", "block", "floor",
	})
}

func TestAssignmentRepositoryListDetailed(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	rows := assignmentDetailRows().
		AddRow("a1", "r1", "d1", "MON", "MORNING", 1300, time.Now(), "Dr. Ana", "Cardiologia", nil, "Sala 1", "A", "1")
	mock.ExpectQuery("SELECT a.id, a.room_id, a.demand_id").WillReturnRows(rows)

	assignments, err := repo.ListDetailed(context.Background())
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "Dr. Ana", assignments[0].ProfessionalName)
	assert.Equal(t, "Sala 1", assignments[0].RoomName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryListBySlot(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	mock.ExpectQuery("WHERE a.day_of_week = \\$1 AND a.shift = \\$2").
		WithArgs("MON", "MORNING").
		WillReturnRows(assignmentDetailRows().
			AddRow("a1", "r1", "d1", "MON", "MORNING", 1300, time.Now(), "Dr. Ana", "Cardiologia", nil, "Sala 1", "A", "1"))

	assignments, err := repo.ListBySlot(context.Background(), models.Monday, models.ShiftMorning)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryBulkCreateInsideTx(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM assignments").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO assignments").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO assignments").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTxx(context.Background(), nil)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteAll(context.Background(), tx))

	assignments := []models.Assignment{
		{RoomID: "r1", DemandID: "d1", DayOfWeek: models.Monday, Shift: models.ShiftMorning, Score: 1300},
		{RoomID: "r2", DemandID: "d2", DayOfWeek: models.Monday, Shift: models.ShiftMorning, Score: 800},
	}
	require.NoError(t, repo.BulkCreate(context.Background(), tx, assignments))
	assert.NotEmpty(t, assignments[0].ID)
	assert.NotEmpty(t, assignments[1].ID)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryUpdateRoom(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE assignments SET room_id = $2 WHERE id = $1")).
		WithArgs("a1", "r2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateRoom(context.Background(), db, "a1", "r2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
