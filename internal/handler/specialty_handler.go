package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gds-saude/gds-api/internal/models"
	"github.com/gds-saude/gds-api/internal/service"
	"github.com/gds-saude/gds-api/pkg/response"
)

type specialtyService interface {
	List(ctx context.Context) ([]models.Specialty, error)
}

// SpecialtyHandler serves the canonical specialty catalogue.
type SpecialtyHandler struct {
	specialties specialtyService
}

// NewSpecialtyHandler constructs the handler.
func NewSpecialtyHandler(specialties *service.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{specialties: specialties}
}

// List godoc
// @Summary List the canonical specialty catalogue
// @Tags Specialty
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /specialties [get]
func (h *SpecialtyHandler) List(c *gin.Context) {
	specialties, err := h.specialties.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, specialties, nil)
}
