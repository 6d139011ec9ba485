package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/model"
	"faculty-schedule/backend/internal/repository"
)

var ErrTeacherProfileNotFound = errors.New("teacher profile not found")

// TimetableService — weekly grid views for cohorts, students and teachers.
type TimetableService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewTimetableService(repo *repository.Repository, logger *zap.Logger) *TimetableService {
	return &TimetableService{repo: repo, logger: logger}
}

// buildGrid places each entry into every display slot its time range
// touches. Placement is inclusive at slot boundaries (an entry ending
// exactly when a slot starts still shows in that slot), looser on purpose
// than the conflict predicate: display should err toward visibility.
func buildGrid(entries []model.ScheduleEntry) map[string][][]dto.ScheduleEntryResponse {
	grid := make(map[string][][]dto.ScheduleEntryResponse, len(Days))
	for _, day := range Days {
		grid[day] = make([][]dto.ScheduleEntryResponse, len(TimeSlots))
	}
	for i := range entries {
		e := &entries[i]
		cells, ok := grid[e.Day]
		if !ok {
			continue
		}
		for s, slot := range TimeSlots {
			if e.StartTime <= slot.End && e.EndTime >= slot.Start {
				cells[s] = append(cells[s], toScheduleEntryResponse(e))
			}
		}
	}
	return grid
}

// entryHours returns an entry's duration in hours, e.g. 1.5 for 90 minutes.
func entryHours(e *model.ScheduleEntry) float64 {
	return float64(minutesOf(e.EndTime)-minutesOf(e.StartTime)) / 60
}

func minutesOf(hhmm string) int {
	if len(hhmm) != 5 {
		return 0
	}
	h, _ := strconv.Atoi(hhmm[:2])
	m, _ := strconv.Atoi(hhmm[3:])
	return h*60 + m
}

func (s *TimetableService) buildTimetable(entries []model.ScheduleEntry) *dto.TimetableResponse {
	resp := &dto.TimetableResponse{
		Days:      Days,
		TimeSlots: TimeSlots,
		Grid:      buildGrid(entries),
		Entries:   make([]dto.ScheduleEntryResponse, 0, len(entries)),
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, toScheduleEntryResponse(&entries[i]))
		resp.TotalHours += entryHours(&entries[i])
	}
	return resp
}

// GetGrid returns the weekly timetable of one program/year cohort.
func (s *TimetableService) GetGrid(ctx context.Context, programID uint, year int) (*dto.TimetableResponse, error) {
	filter := &dto.ScheduleEntryFilter{ProgramID: &programID, Year: &year}
	entries, err := s.repo.Schedule.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.buildTimetable(entries), nil
}

// GetStudentTimetable returns the timetable visible to one student account:
// the cohort's entries addressed to the student's group plus wildcards. An
// account without a cohort gets an empty grid.
func (s *TimetableService) GetStudentTimetable(ctx context.Context, userID uint, groupID *uint) (*dto.TimetableResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.ProgramID == nil || user.Year == nil {
		return s.buildTimetable(nil), nil
	}
	entries, err := s.repo.Schedule.ListForStudent(ctx, *user.ProgramID, *user.Year, groupID)
	if err != nil {
		return nil, err
	}
	return s.buildTimetable(entries), nil
}

// GetTeacherTimetable returns the timetable of the teacher bound to a user
// account, with total weekly hours for workload display.
func (s *TimetableService) GetTeacherTimetable(ctx context.Context, userID uint) (*dto.TimetableResponse, error) {
	teacher, err := s.repo.Teacher.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherProfileNotFound
		}
		return nil, err
	}
	entries, err := s.repo.Schedule.ListByTeacher(ctx, teacher.ID)
	if err != nil {
		return nil, err
	}
	return s.buildTimetable(entries), nil
}
