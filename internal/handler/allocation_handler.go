package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gds-saude/gds-api/internal/dto"
	"github.com/gds-saude/gds-api/internal/models"
	"github.com/gds-saude/gds-api/internal/service"
	"github.com/gds-saude/gds-api/pkg/response"
)

type allocationService interface {
	Regenerate(ctx context.Context) (*dto.RegenerateResponse, error)
	CurrentSummary(ctx context.Context) (*dto.CurrentSummaryResponse, bool, error)
	Conflicts(ctx context.Context) ([]models.Conflict, error)
}

type exportService interface {
	SummaryCSV(ctx context.Context) ([]byte, error)
	SummaryPDF(ctx context.Context) ([]byte, error)
}

// AllocationHandler exposes the schedule engine endpoints.
type AllocationHandler struct {
	allocation allocationService
	exports    exportService
}

// NewAllocationHandler constructs the handler.
func NewAllocationHandler(allocation *service.AllocationService, exports *service.ExportService) *AllocationHandler {
	return &AllocationHandler{allocation: allocation, exports: exports}
}

// Regenerate godoc
// @Summary Rebuild the weekly room allocation
// @Description Discards the current plan and reruns the matcher over the full demand set.
// @Tags Allocation
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /allocation/generate [post]
func (h *AllocationHandler) Regenerate(c *gin.Context) {
	result, err := h.allocation.Regenerate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Summary godoc
// @Summary Current allocation summary
// @Description Per-specialty rooms, locations and head-count for the persisted plan.
// @Tags Allocation
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /allocation/summary [get]
func (h *AllocationHandler) Summary(c *gin.Context) {
	result, cached, err := h.allocation.CurrentSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, map[string]interface{}{"cached": cached})
}

// Conflicts godoc
// @Summary List unresolved demand
// @Tags Allocation
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /allocation/conflicts [get]
func (h *AllocationHandler) Conflicts(c *gin.Context) {
	conflicts, err := h.allocation.Conflicts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, conflicts, nil)
}

// ExportCSV godoc
// @Summary Download the summary as CSV
// @Tags Allocation
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Router /allocation/summary/export/csv [get]
func (h *AllocationHandler) ExportCSV(c *gin.Context) {
	payload, err := h.exports.SummaryCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="resumo-alocacao.csv"`)
	c.Data(http.StatusOK, "text/csv", payload)
}

// ExportPDF godoc
// @Summary Download the summary as PDF
// @Tags Allocation
// @Produce application/pdf
// @Success 200 {string} string "PDF payload"
// @Router /allocation/summary/export/pdf [get]
func (h *AllocationHandler) ExportPDF(c *gin.Context) {
	payload, err := h.exports.SummaryPDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="resumo-alocacao.pdf"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}
