package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gds-saude/gds-api/internal/models"
)

type fakeSpecialtySrv struct {
	items []models.Specialty
}

func (f *fakeSpecialtySrv) List(context.Context) ([]models.Specialty, error) {
	return f.items, nil
}

func TestSpecialtyHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &SpecialtyHandler{specialties: &fakeSpecialtySrv{items: []models.Specialty{
		{ID: "cardiologia", Name: "Cardiologia"},
	}}}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/specialties", nil)

	h.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Cardiologia", envelope.Data[0]["name"])
}
