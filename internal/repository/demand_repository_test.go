package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gds-saude/gds-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func demandRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "professional_name", "specialty", "specialty_id", "resource_kind", "day_of_week", "shift", "origin", "created_at"})
}

func TestDemandRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDemandRepository(db)

	rows := demandRows().
		AddRow("d1", "Dr. Ana", "Cardiologia", nil, "STAFF", "MON", "MORNING", "IMPORT", time.Now()).
		AddRow("d2", "Dr. Bia", "Pediatria", nil, "RESIDENT", "TUE", "NIGHT", "MANUAL", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, professional_name, specialty, specialty_id, resource_kind, day_of_week, shift, origin, created_at FROM demands WHERE 1=1 ORDER BY created_at ASC, id ASC")).
		WillReturnRows(rows)

	demands, err := repo.List(context.Background(), models.DemandFilter{})
	require.NoError(t, err)
	assert.Len(t, demands, 2)
	assert.Equal(t, models.Monday, demands[0].DayOfWeek)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDemandRepositoryListWithFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDemandRepository(db)

	mock.ExpectQuery("FROM demands WHERE 1=1 AND day_of_week = \\$1 AND shift = \\$2 AND LOWER\\(specialty\\) LIKE \\$3").
		WithArgs("MON", "MORNING", "%cardio%").
		WillReturnRows(demandRows().AddRow("d1", "Dr. Ana", "Cardiologia", nil, "STAFF", "MON", "MORNING", "IMPORT", time.Now()))

	demands, err := repo.List(context.Background(), models.DemandFilter{DayOfWeek: "MON", Shift: "MORNING", Specialty: "Cardio"})
	require.NoError(t, err)
	assert.Len(t, demands, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDemandRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDemandRepository(db)

	mock.ExpectExec("INSERT INTO demands").
		WithArgs(sqlmock.AnyArg(), "Dr. Ana", "Cardiologia", nil, "EXTRA", "MON", "MORNING", "MANUAL", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	demand := &models.SpecialtyDemand{
		ProfessionalName: "Dr. Ana",
		Specialty:        "Cardiologia",
		ResourceKind:     models.ResourceExtra,
		DayOfWeek:        models.Monday,
		Shift:            models.ShiftMorning,
		Origin:           models.OriginManual,
	}
	require.NoError(t, repo.Create(context.Background(), demand))
	assert.NotEmpty(t, demand.ID, "id is generated on insert")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDemandRepositoryDeleteByOrigin(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDemandRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM demands WHERE origin = $1")).
		WithArgs("IMPORT").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteByOrigin(context.Background(), models.OriginImport))
	assert.NoError(t, mock.ExpectationsWereMet())
}
