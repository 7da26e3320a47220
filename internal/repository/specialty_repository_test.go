package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialtyRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSpecialtyRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow("cardiologia", "Cardiologia").
		AddRow("pediatria", "Pediatria")
	mock.ExpectQuery("SELECT id, name FROM specialties ORDER BY name ASC").WillReturnRows(rows)

	specialties, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, specialties, 2)
	assert.Equal(t, "cardiologia", specialties[0].ID)
	assert.Equal(t, "Pediatria", specialties[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
