package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/service"
	"faculty-schedule/backend/pkg/response"
)

// ScheduleHandler — schedule entry endpoints. Conflicting writes come back
// as 409 with the human-readable message and the bucketed report in data.
type ScheduleHandler struct {
	scheduleSvc  *service.ScheduleService
	dashboardSvc *service.DashboardService
}

func NewScheduleHandler(scheduleSvc *service.ScheduleService, dashboardSvc *service.DashboardService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc, dashboardSvc: dashboardSvc}
}

// Create — POST /api/v1/schedule
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 17001, "Paramètres invalides")
		return
	}

	entry, err := h.scheduleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.dashboardSvc.Invalidate(c.Request.Context())
	response.Created(c, entry)
}

// List — GET /api/v1/schedule?program_id=&year=&teacher_id=
func (h *ScheduleHandler) List(c *gin.Context) {
	var filter dto.ScheduleEntryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, 17001, "Paramètres invalides")
		return
	}

	entries, err := h.scheduleSvc.List(c.Request.Context(), &filter)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// Get — GET /api/v1/schedule/:id
func (h *ScheduleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, 17001)
	if !ok {
		return
	}

	entry, err := h.scheduleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, entry)
}

// Update — PUT /api/v1/schedule/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, 17001)
	if !ok {
		return
	}

	var req dto.UpdateScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 17001, "Paramètres invalides")
		return
	}

	entry, err := h.scheduleSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.dashboardSvc.Invalidate(c.Request.Context())
	response.OK(c, entry)
}

// Delete — DELETE /api/v1/schedule/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, 17001)
	if !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	h.dashboardSvc.Invalidate(c.Request.Context())
	response.OK(c, nil)
}

func (h *ScheduleHandler) handleError(c *gin.Context, err error) {
	var conflictErr *service.ConflictError
	switch {
	case errors.As(err, &conflictErr):
		response.Conflict(c, 17005, conflictErr.Error(), conflictErr.Report)
	case errors.Is(err, service.ErrEntryNotFound):
		response.NotFound(c, 17002, "Créneau introuvable")
	case errors.Is(err, service.ErrInvalidDay):
		response.BadRequest(c, 17003, "Jour invalide")
	case errors.Is(err, service.ErrInvalidTime),
		errors.Is(err, service.ErrInvalidTimeRange):
		response.BadRequest(c, 17004, "Horaire invalide")
	default:
		response.InternalError(c)
	}
}
