package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/service"
	"faculty-schedule/backend/pkg/response"
)

// RoomHandler — room CRUD endpoints.
type RoomHandler struct {
	roomSvc *service.RoomService
}

func NewRoomHandler(roomSvc *service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// Create — POST /api/v1/rooms
func (h *RoomHandler) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "Paramètres invalides")
		return
	}

	room, err := h.roomSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, room)
}

// List — GET /api/v1/rooms
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.roomSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": rooms})
}

// Get — GET /api/v1/rooms/:id
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, 14001)
	if !ok {
		return
	}

	room, err := h.roomSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, room)
}

// Update — PUT /api/v1/rooms/:id
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, 14001)
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "Paramètres invalides")
		return
	}

	room, err := h.roomSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, room)
}

// Delete — DELETE /api/v1/rooms/:id
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, 14001)
	if !ok {
		return
	}

	if err := h.roomSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *RoomHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrRoomNotFound) {
		response.NotFound(c, 14002, "Salle introuvable")
		return
	}
	response.InternalError(c)
}
