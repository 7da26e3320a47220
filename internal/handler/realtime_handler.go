package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gds-saude/gds-api/internal/dto"
	"github.com/gds-saude/gds-api/internal/service"
	appErrors "github.com/gds-saude/gds-api/pkg/errors"
	"github.com/gds-saude/gds-api/pkg/response"
)

type realtimeService interface {
	Status(ctx context.Context) (*dto.RealtimeStatusResponse, error)
	StatusAt(ctx context.Context, at time.Time) (*dto.RealtimeStatusResponse, error)
}

// RealtimeHandler exposes the live occupancy projection.
type RealtimeHandler struct {
	realtime realtimeService
}

// NewRealtimeHandler constructs the handler.
func NewRealtimeHandler(realtime *service.RealtimeService) *RealtimeHandler {
	return &RealtimeHandler{realtime: realtime}
}

// Status godoc
// @Summary Live room occupancy for the current slot
// @Tags Realtime
// @Produce json
// @Param at query string false "RFC3339 instant to project instead of now"
// @Success 200 {object} response.Envelope
// @Router /realtime/status [get]
func (h *RealtimeHandler) Status(c *gin.Context) {
	var (
		result *dto.RealtimeStatusResponse
		err    error
	)
	if raw := c.Query("at"); raw != "" {
		at, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			response.Error(c, appErrors.Wrap(parseErr, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "at must be RFC3339"))
			return
		}
		result, err = h.realtime.StatusAt(c.Request.Context(), at)
	} else {
		result, err = h.realtime.Status(c.Request.Context())
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
