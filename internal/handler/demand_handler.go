package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gds-saude/gds-api/internal/dto"
	"github.com/gds-saude/gds-api/internal/models"
	"github.com/gds-saude/gds-api/internal/service"
	appErrors "github.com/gds-saude/gds-api/pkg/errors"
	"github.com/gds-saude/gds-api/pkg/response"
)

type demandService interface {
	List(ctx context.Context, filter models.DemandFilter) ([]models.SpecialtyDemand, error)
	Create(ctx context.Context, req dto.CreateDemandRequest) (*models.SpecialtyDemand, error)
}

// DemandHandler exposes weekly demand endpoints.
type DemandHandler struct {
	demands demandService
}

// NewDemandHandler constructs the handler.
func NewDemandHandler(demands *service.DemandService) *DemandHandler {
	return &DemandHandler{demands: demands}
}

// List godoc
// @Summary List weekly demand
// @Tags Demand
// @Produce json
// @Param day query string false "Filter by day of week"
// @Param shift query string false "Filter by shift"
// @Param specialty query string false "Filter by specialty label"
// @Param origin query string false "Filter by origin (IMPORT, MANUAL)"
// @Success 200 {object} response.Envelope
// @Router /demands [get]
func (h *DemandHandler) List(c *gin.Context) {
	filter := models.DemandFilter{
		DayOfWeek: c.Query("day"),
		Shift:     c.Query("shift"),
		Specialty: c.Query("specialty"),
		Origin:    c.Query("origin"),
	}
	demands, err := h.demands.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, demands, nil)
}

// Create godoc
// @Summary Add a manual demand record
// @Description The new record is placed on the next regeneration.
// @Tags Demand
// @Accept json
// @Produce json
// @Param payload body dto.CreateDemandRequest true "Demand payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /demands [post]
func (h *DemandHandler) Create(c *gin.Context) {
	var req dto.CreateDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	demand, err := h.demands.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, demand)
}
