package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/service"
	"faculty-schedule/backend/pkg/response"
)

// CourseHandler — course CRUD endpoints.
type CourseHandler struct {
	courseSvc *service.CourseService
}

func NewCourseHandler(courseSvc *service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// Create — POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15001, "Paramètres invalides")
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, course)
}

// List — GET /api/v1/courses?program_id=
func (h *CourseHandler) List(c *gin.Context) {
	if raw := c.Query("program_id"); raw != "" {
		programID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, 15001, "Paramètres invalides")
			return
		}
		courses, err := h.courseSvc.ListByProgram(c.Request.Context(), uint(programID))
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, gin.H{"list": courses})
		return
	}

	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": courses})
}

// Get — GET /api/v1/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, 15001)
	if !ok {
		return
	}

	course, err := h.courseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, course)
}

// Update — PUT /api/v1/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, 15001)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15001, "Paramètres invalides")
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, course)
}

// Delete — DELETE /api/v1/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, 15001)
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *CourseHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 15002, "Cours introuvable")
	case errors.Is(err, service.ErrCourseCodeTaken):
		response.Error(c, http.StatusConflict, 15003, err.Error())
	case errors.Is(err, service.ErrProgramNotFound):
		response.BadRequest(c, 15004, "Filière introuvable")
	case errors.Is(err, service.ErrTeacherNotFound):
		response.BadRequest(c, 15005, "Enseignant introuvable")
	default:
		response.InternalError(c)
	}
}
