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

type fakeAuthSrv struct {
	resp *dto.LoginResponse
	err  error
}

func (f *fakeAuthSrv) Login(context.Context, dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.resp, f.err
}

func TestAuthHandlerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &AuthHandler{auth: &fakeAuthSrv{resp: &dto.LoginResponse{Token: "jwt-token"}}}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"admin","password":"s3cret"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "jwt-token", envelope.Data["token"])
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &AuthHandler{auth: &fakeAuthSrv{err: appErrors.ErrInvalidCredentials}}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
