package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/service"
	"faculty-schedule/backend/pkg/response"
)

// TeacherHandler — teacher management endpoints.
type TeacherHandler struct {
	teacherSvc *service.TeacherService
}

func NewTeacherHandler(teacherSvc *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc}
}

// Create — POST /api/v1/teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13001, "Paramètres invalides")
		return
	}

	teacher, err := h.teacherSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, teacher)
}

// List — GET /api/v1/teachers
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.teacherSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": teachers})
}

// Get — GET /api/v1/teachers/:id
func (h *TeacherHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, 13001)
	if !ok {
		return
	}

	teacher, err := h.teacherSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, teacher)
}

// Update — PUT /api/v1/teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, 13001)
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13001, "Paramètres invalides")
		return
	}

	teacher, err := h.teacherSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, teacher)
}

// Delete — DELETE /api/v1/teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, 13001)
	if !ok {
		return
	}

	if err := h.teacherSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *TeacherHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, 13002, "Enseignant introuvable")
	case errors.Is(err, service.ErrUsernameTaken):
		response.Error(c, http.StatusConflict, 13003, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		response.Error(c, http.StatusConflict, 13004, err.Error())
	default:
		response.InternalError(c)
	}
}
