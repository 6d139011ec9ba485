package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/service"
	"faculty-schedule/backend/pkg/response"
)

// DepartmentHandler — department CRUD endpoints.
type DepartmentHandler struct {
	deptSvc *service.DepartmentService
}

func NewDepartmentHandler(deptSvc *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// Create — POST /api/v1/departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "Paramètres invalides")
		return
	}

	dept, err := h.deptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, dept)
}

// List — GET /api/v1/departments
func (h *DepartmentHandler) List(c *gin.Context) {
	depts, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": depts})
}

// Get — GET /api/v1/departments/:id
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, 11001)
	if !ok {
		return
	}

	dept, err := h.deptSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, dept)
}

// Update — PUT /api/v1/departments/:id
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, 11001)
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "Paramètres invalides")
		return
	}

	dept, err := h.deptSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, dept)
}

// Delete — DELETE /api/v1/departments/:id
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, 11001)
	if !ok {
		return
	}

	if err := h.deptSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *DepartmentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 11002, "Département introuvable")
	case errors.Is(err, service.ErrDepartmentTaken):
		response.Error(c, http.StatusConflict, 11003, err.Error())
	case errors.Is(err, service.ErrDepartmentInUse):
		response.Error(c, http.StatusConflict, 11004, "Le département contient encore des filières")
	default:
		response.InternalError(c)
	}
}
