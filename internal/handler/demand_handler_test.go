package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/gds-saude/gds-api/internal/dto"
	"github.com/gds-saude/gds-api/internal/models"
)

type fakeDemandSrv struct {
	listResp   []models.SpecialtyDemand
	createResp *models.SpecialtyDemand
	createErr  error
	lastFilter models.DemandFilter
}

func (f *fakeDemandSrv) List(_ context.Context, filter models.DemandFilter) ([]models.SpecialtyDemand, error) {
	f.lastFilter = filter
	return f.listResp, nil
}

func (f *fakeDemandSrv) Create(context.Context, dto.CreateDemandRequest) (*models.SpecialtyDemand, error) {
	return f.createResp, f.createErr
}

func TestDemandHandlerListPassesFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fake := &fakeDemandSrv{}
	h := &DemandHandler{demands: fake}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/demands?day=MON&shift=MORNING&origin=MANUAL", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MON", fake.lastFilter.DayOfWeek)
	assert.Equal(t, "MORNING", fake.lastFilter.Shift)
	assert.Equal(t, "MANUAL", fake.lastFilter.Origin)
}

func TestDemandHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &DemandHandler{demands: &fakeDemandSrv{
		createResp: &models.SpecialtyDemand{ID: "d1", Origin: models.OriginManual},
	}}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/demands",
		strings.NewReader(`{"professionalName":"Dr. Ana","specialty":"Cardiologia","dayOfWeek":"MON","shift":"MORNING"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDemandHandlerCreateBadPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &DemandHandler{demands: &fakeDemandSrv{}}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/demands", strings.NewReader(`{`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
