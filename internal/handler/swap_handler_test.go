package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gds-saude/gds-api/internal/dto"
	appErrors "github.com/gds-saude/gds-api/pkg/errors"
)

type fakeSwapSrv struct {
	optionsResp *dto.SwapOptionsResponse
	optionsErr  error
	applyResp   *dto.ApplySwapResponse
	applyErr    error
	lastApply   dto.ApplySwapRequest
}

func (f *fakeSwapSrv) Options(context.Context, string) (*dto.SwapOptionsResponse, error) {
	return f.optionsResp, f.optionsErr
}

func (f *fakeSwapSrv) Apply(_ context.Context, _ string, req dto.ApplySwapRequest) (*dto.ApplySwapResponse, error) {
	f.lastApply = req
	return f.applyResp, f.applyErr
}

func TestSwapHandlerOptionsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &SwapHandler{swaps: &fakeSwapSrv{optionsErr: appErrors.ErrNotFound}}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/allocation/assignments/missing/swap-options", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	h.Options(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSwapHandlerApply(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fake := &fakeSwapSrv{applyResp: &dto.ApplySwapResponse{AssignmentID: "a1", RoomID: "r2"}}
	h := &SwapHandler{swaps: fake}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/allocation/assignments/a1/swap",
		strings.NewReader(`{"roomId":"r2","force":true}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "a1"}}

	h.Apply(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, fake.lastApply.Force)
	assert.Equal(t, "r2", fake.lastApply.RoomID)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "r2", envelope.Data["roomId"])
}

func TestSwapHandlerApplyRejectsBadPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &SwapHandler{swaps: &fakeSwapSrv{}}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/allocation/assignments/a1/swap",
		strings.NewReader(`{not json`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "a1"}}

	h.Apply(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSwapHandlerApplyConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &SwapHandler{swaps: &fakeSwapSrv{applyErr: appErrors.ErrConflict}}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/allocation/assignments/a1/swap",
		strings.NewReader(`{"roomId":"r2"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "a1"}}

	h.Apply(c)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
