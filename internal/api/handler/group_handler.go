package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/service"
	"faculty-schedule/backend/pkg/response"
)

// GroupHandler — student group CRUD endpoints.
type GroupHandler struct {
	groupSvc *service.GroupService
}

func NewGroupHandler(groupSvc *service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// Create — POST /api/v1/groups
func (h *GroupHandler) Create(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16001, "Paramètres invalides")
		return
	}

	group, err := h.groupSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, group)
}

// List — GET /api/v1/groups?program_id=
func (h *GroupHandler) List(c *gin.Context) {
	if raw := c.Query("program_id"); raw != "" {
		programID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, 16001, "Paramètres invalides")
			return
		}
		groups, err := h.groupSvc.ListByProgram(c.Request.Context(), uint(programID))
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, gin.H{"list": groups})
		return
	}

	groups, err := h.groupSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": groups})
}

// Get — GET /api/v1/groups/:id
func (h *GroupHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, 16001)
	if !ok {
		return
	}

	group, err := h.groupSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, group)
}

// Update — PUT /api/v1/groups/:id
func (h *GroupHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, 16001)
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16001, "Paramètres invalides")
		return
	}

	group, err := h.groupSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, group)
}

// Delete — DELETE /api/v1/groups/:id
func (h *GroupHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, 16001)
	if !ok {
		return
	}

	if err := h.groupSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *GroupHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		response.NotFound(c, 16002, "Groupe introuvable")
	case errors.Is(err, service.ErrProgramNotFound):
		response.BadRequest(c, 16003, "Filière introuvable")
	default:
		response.InternalError(c)
	}
}
