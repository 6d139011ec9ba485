package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/internal/service"
	"faculty-schedule/backend/pkg/response"
)

// TimetableHandler — weekly grid endpoints.
type TimetableHandler struct {
	timetableSvc *service.TimetableService
}

func NewTimetableHandler(timetableSvc *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableSvc: timetableSvc}
}

// Grid — GET /api/v1/timetable?program_id=&year=
func (h *TimetableHandler) Grid(c *gin.Context) {
	programID, err := strconv.ParseUint(c.Query("program_id"), 10, 32)
	if err != nil || programID == 0 {
		response.BadRequest(c, 18001, "program_id requis")
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		response.BadRequest(c, 18001, "year requis")
		return
	}

	grid, err := h.timetableSvc.GetGrid(c.Request.Context(), uint(programID), year)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, grid)
}

// MyStudentTimetable — GET /api/v1/timetable/student?group_id=
func (h *TimetableHandler) MyStudentTimetable(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var groupID *uint
	if raw := c.Query("group_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, 18001, "group_id invalide")
			return
		}
		id := uint(parsed)
		groupID = &id
	}

	timetable, err := h.timetableSvc.GetStudentTimetable(c.Request.Context(), userID, groupID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 18002, "Utilisateur introuvable")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, timetable)
}

// MyTeacherTimetable — GET /api/v1/timetable/teacher
func (h *TimetableHandler) MyTeacherTimetable(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	timetable, err := h.timetableSvc.GetTeacherTimetable(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrTeacherProfileNotFound) {
			response.NotFound(c, 18003, "Profil enseignant introuvable")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, timetable)
}
