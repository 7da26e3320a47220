package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gds-saude/gds-api/internal/dto"
	"github.com/gds-saude/gds-api/internal/service"
	appErrors "github.com/gds-saude/gds-api/pkg/errors"
	"github.com/gds-saude/gds-api/pkg/response"
)

type swapService interface {
	Options(ctx context.Context, assignmentID string) (*dto.SwapOptionsResponse, error)
	Apply(ctx context.Context, assignmentID string, req dto.ApplySwapRequest) (*dto.ApplySwapResponse, error)
}

// SwapHandler exposes manual reassignment endpoints.
type SwapHandler struct {
	swaps swapService
}

// NewSwapHandler constructs the handler.
func NewSwapHandler(swaps *service.SwapService) *SwapHandler {
	return &SwapHandler{swaps: swaps}
}

// Options godoc
// @Summary List candidate rooms for an assignment
// @Tags Swaps
// @Produce json
// @Param id path string true "Assignment id"
// @Success 200 {object} response.Envelope
// @Router /allocation/assignments/{id}/swap-options [get]
func (h *SwapHandler) Options(c *gin.Context) {
	result, err := h.swaps.Options(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Apply godoc
// @Summary Move an assignment into another room
// @Tags Swaps
// @Accept json
// @Produce json
// @Param id path string true "Assignment id"
// @Param payload body dto.ApplySwapRequest true "Swap payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /allocation/assignments/{id}/swap [post]
func (h *SwapHandler) Apply(c *gin.Context) {
	var req dto.ApplySwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.swaps.Apply(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
