package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/internal/service"
	"faculty-schedule/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler — timetable download endpoints.
type ExportHandler struct {
	exportSvc *service.ExportService
}

func NewExportHandler(exportSvc *service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// GridXLSX — GET /api/v1/export/timetable?program_id=&year=
func (h *ExportHandler) GridXLSX(c *gin.Context) {
	programID, err := strconv.ParseUint(c.Query("program_id"), 10, 32)
	if err != nil || programID == 0 {
		response.BadRequest(c, 19001, "program_id requis")
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		response.BadRequest(c, 19001, "year requis")
		return
	}

	buf, filename, err := h.exportSvc.ExportGridXLSX(c.Request.Context(), uint(programID), year)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeDownload(c, filename, xlsxContentType, buf.Bytes())
}

// TeacherICS — GET /api/v1/export/teachers/:id/ics
func (h *ExportHandler) TeacherICS(c *gin.Context) {
	id, ok := parseIDParam(c, 19001)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportTeacherICS(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeDownload(c, filename, "text/calendar", buf.Bytes())
}

func writeDownload(c *gin.Context, filename, contentType string, body []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, body)
}

func (h *ExportHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoEntries):
		response.NotFound(c, 19002, "Aucun créneau à exporter")
	default:
		response.InternalError(c)
	}
}
