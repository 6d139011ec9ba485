package handler

import "faculty-schedule/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth       *AuthHandler
	Department *DepartmentHandler
	Program    *ProgramHandler
	Teacher    *TeacherHandler
	Room       *RoomHandler
	Course     *CourseHandler
	Group      *GroupHandler
	Schedule   *ScheduleHandler
	Timetable  *TimetableHandler
	Export     *ExportHandler
	Dashboard  *DashboardHandler
}

// NewHandler builds the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Department: NewDepartmentHandler(svc.Department),
		Program:    NewProgramHandler(svc.Program),
		Teacher:    NewTeacherHandler(svc.Teacher),
		Room:       NewRoomHandler(svc.Room),
		Course:     NewCourseHandler(svc.Course),
		Group:      NewGroupHandler(svc.Group),
		Schedule:   NewScheduleHandler(svc.Schedule, svc.Dashboard),
		Timetable:  NewTimetableHandler(svc.Timetable),
		Export:     NewExportHandler(svc.Export),
		Dashboard:  NewDashboardHandler(svc.Dashboard),
	}
}
