package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gds-saude/gds-api/internal/models"
)

func TestConflictRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewConflictRepository(db)

	score := -5200
	rows := sqlmock.NewRows([]string{"id", "demand_id", "professional_name", "specialty", "day_of_week", "shift", "reason", "best_score", "created_at"}).
		AddRow("c1", "d1", "Dr. Ana", "Oftalmologia", "MON", "MORNING", "NO_COMPATIBLE_ROOM", score, time.Now()).
		AddRow("c2", nil, "Dr. Bia", "Cardiologia", "MON", "NIGHT", "CAPACITY_EXHAUSTED", nil, time.Now())
	mock.ExpectQuery("FROM conflicts ORDER BY created_at DESC, id ASC").WillReturnRows(rows)

	conflicts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, conflicts, 2)
	assert.Equal(t, models.ReasonNoCompatibleRoom, conflicts[0].Reason)
	require.NotNil(t, conflicts[0].BestScore)
	assert.Equal(t, score, *conflicts[0].BestScore)
	assert.Nil(t, conflicts[1].BestScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConflictRepositoryCreateGeneratesID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewConflictRepository(db)

	mock.ExpectExec("INSERT INTO conflicts").WillReturnResult(sqlmock.NewResult(1, 1))

	conflict := &models.Conflict{
		ProfessionalName: "Dr. Bia",
		Specialty:        "Pediatria",
		DayOfWeek:        models.Monday,
		Shift:            models.ShiftMorning,
		Reason:           models.ReasonSwapEvicted,
	}
	require.NoError(t, repo.Create(context.Background(), db, conflict))
	assert.NotEmpty(t, conflict.ID)
	assert.False(t, conflict.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
