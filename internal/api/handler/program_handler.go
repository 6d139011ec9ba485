package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/service"
	"faculty-schedule/backend/pkg/response"
)

// ProgramHandler — program CRUD endpoints.
type ProgramHandler struct {
	programSvc *service.ProgramService
}

func NewProgramHandler(programSvc *service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programSvc: programSvc}
}

// Create — POST /api/v1/programs
func (h *ProgramHandler) Create(c *gin.Context) {
	var req dto.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "Paramètres invalides")
		return
	}

	program, err := h.programSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, program)
}

// List — GET /api/v1/programs
func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.programSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": programs})
}

// Get — GET /api/v1/programs/:id
func (h *ProgramHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, 12001)
	if !ok {
		return
	}

	program, err := h.programSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, program)
}

// Update — PUT /api/v1/programs/:id
func (h *ProgramHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, 12001)
	if !ok {
		return
	}

	var req dto.UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "Paramètres invalides")
		return
	}

	program, err := h.programSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, program)
}

// Delete — DELETE /api/v1/programs/:id
func (h *ProgramHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, 12001)
	if !ok {
		return
	}

	if err := h.programSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ProgramHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		response.NotFound(c, 12002, "Filière introuvable")
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.BadRequest(c, 12003, "Département introuvable")
	default:
		response.InternalError(c)
	}
}
