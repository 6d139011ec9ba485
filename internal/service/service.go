package service

import (
	"go.uber.org/zap"

	"faculty-schedule/backend/internal/repository"
	"faculty-schedule/backend/pkg/jwt"
	"faculty-schedule/backend/pkg/mailer"
	"faculty-schedule/backend/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth       *AuthService
	Department *DepartmentService
	Program    *ProgramService
	Teacher    *TeacherService
	Room       *RoomService
	Course     *CourseService
	Group      *GroupService
	Schedule   *ScheduleService
	Timetable  *TimetableService
	Export     *ExportService
	Dashboard  *DashboardService
}

// NewService builds the service aggregate. redisClient and m may be nil;
// the affected features degrade (no token revocation, no stats cache, no
// credential mails) without blocking startup.
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	redisClient *redis.Client,
	m *mailer.Mailer,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(repo, jwtMgr, redisClient, logger),
		Department: NewDepartmentService(repo, logger),
		Program:    NewProgramService(repo, logger),
		Teacher:    NewTeacherService(repo, m, logger),
		Room:       NewRoomService(repo, logger),
		Course:     NewCourseService(repo, logger),
		Group:      NewGroupService(repo, logger),
		Schedule:   NewScheduleService(repo, logger),
		Timetable:  NewTimetableService(repo, logger),
		Export:     NewExportService(repo, logger),
		Dashboard:  NewDashboardService(repo, redisClient, logger),
	}
}
