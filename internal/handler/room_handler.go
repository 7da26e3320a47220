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

type roomService interface {
	List(ctx context.Context) ([]models.RoomSupply, error)
	SetMaintenance(ctx context.Context, id string, maintenance bool) (*models.RoomSupply, error)
	CheckIn(ctx context.Context, id, occupantName string) (*models.RoomSupply, error)
	CheckOut(ctx context.Context, id string) (*models.RoomSupply, error)
	Delete(ctx context.Context, id string) error
}

// RoomHandler exposes room supply endpoints.
type RoomHandler struct {
	rooms roomService
}

// NewRoomHandler constructs the handler.
func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// List godoc
// @Summary List rooms
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.rooms.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms, nil)
}

// SetMaintenance godoc
// @Summary Toggle room maintenance
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room id"
// @Param payload body dto.SetMaintenanceRequest true "Maintenance payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /rooms/{id}/maintenance [put]
func (h *RoomHandler) SetMaintenance(c *gin.Context) {
	var req dto.SetMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	room, err := h.rooms.SetMaintenance(c.Request.Context(), c.Param("id"), req.Maintenance)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room, nil)
}

// CheckIn godoc
// @Summary Manually check an occupant into a room
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room id"
// @Param payload body dto.CheckInRequest true "Check-in payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /rooms/{id}/check-in [post]
func (h *RoomHandler) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	room, err := h.rooms.CheckIn(c.Request.Context(), c.Param("id"), req.OccupantName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room, nil)
}

// CheckOut godoc
// @Summary Release a room's occupancy
// @Tags Rooms
// @Produce json
// @Param id path string true "Room id"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /rooms/{id}/check-out [post]
func (h *RoomHandler) CheckOut(c *gin.Context) {
	room, err := h.rooms.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room, nil)
}

// Delete godoc
// @Summary Remove a room
// @Tags Rooms
// @Param id path string true "Room id"
// @Success 204
// @Security BearerAuth
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.rooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
