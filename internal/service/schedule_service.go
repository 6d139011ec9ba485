package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/model"
	"faculty-schedule/backend/internal/repository"
)

var (
	ErrEntryNotFound    = errors.New("schedule entry not found")
	ErrInvalidDay       = errors.New("invalid day of week")
	ErrInvalidTime      = errors.New("time must be zero-padded HH:MM")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

// ConflictError carries the full bucketed report so the handler can return
// both the human-readable message and the structured detail.
type ConflictError struct {
	Report *dto.ConflictReport
}

func (e *ConflictError) Error() string {
	return "Conflits détectés: " + strings.Join(e.Report.Messages(), " | ")
}

// Days — working days of the week, in display order.
var Days = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"}

// TimeSlots — the fixed display slots of the weekly grid. Entries are not
// required to align with them; the grid places an entry in every slot its
// time range touches.
var TimeSlots = []dto.TimeSlotResponse{
	{Start: "08:30", End: "10:30"},
	{Start: "10:40", End: "12:40"},
	{Start: "13:00", End: "15:00"},
	{Start: "15:10", End: "17:10"},
	{Start: "17:20", End: "19:20"},
}

var dayIndex = func() map[string]int {
	m := make(map[string]int, len(Days))
	for i, d := range Days {
		m[d] = i
	}
	return m
}()

var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// overlaps reports whether two half-open [start, end) ranges intersect.
// Zero-padded HH:MM strings compare lexicographically as times, so this
// works directly on the stored representation. Abutting ranges (aEnd ==
// bStart) do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// ScheduleService — conflict-checked schedule entry management.
type ScheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewScheduleService(repo *repository.Repository, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{repo: repo, logger: logger}
}

func (s *ScheduleService) validate(req *dto.CreateScheduleEntryRequest) error {
	if _, ok := dayIndex[req.Day]; !ok {
		return ErrInvalidDay
	}
	if !timeRe.MatchString(req.StartTime) || !timeRe.MatchString(req.EndTime) {
		return ErrInvalidTime
	}
	if req.StartTime >= req.EndTime {
		return ErrInvalidTimeRange
	}
	return nil
}

// detectConflicts checks a candidate against every entry of the same day,
// partitioned into three independent buckets:
//
//   - room:    same room, overlapping time;
//   - teacher: same teacher, overlapping time;
//   - group:   same program/year and overlapping time, where the existing
//     entry is a wildcard (no group) or addresses the candidate's group.
//
// The group bucket is only evaluated when the candidate names a concrete
// group. excludeID skips the entry being updated.
func detectConflicts(candidate *dto.CreateScheduleEntryRequest, existing []model.ScheduleEntry, excludeID uint) *dto.ConflictReport {
	report := &dto.ConflictReport{}
	for i := range existing {
		e := &existing[i]
		if e.ID == excludeID {
			continue
		}
		if !overlaps(candidate.StartTime, candidate.EndTime, e.StartTime, e.EndTime) {
			continue
		}
		courseName := ""
		if e.Course != nil {
			courseName = e.Course.Name
		}
		teacherName := ""
		if e.Teacher != nil {
			teacherName = e.Teacher.FullName()
		}
		roomName := ""
		if e.Room != nil {
			roomName = e.Room.Name
		}
		if e.RoomID == candidate.RoomID {
			report.Room = append(report.Room, dto.ConflictDescriptor{
				Course:  courseName,
				Teacher: teacherName,
				Group:   e.GroupLabel(),
				Time:    e.TimeRange(),
			})
		}
		if e.TeacherID == candidate.TeacherID {
			report.Teacher = append(report.Teacher, dto.ConflictDescriptor{
				Course: courseName,
				Room:   roomName,
				Group:  e.GroupLabel(),
				Time:   e.TimeRange(),
			})
		}
		if candidate.GroupID != nil &&
			e.ProgramID == candidate.ProgramID && e.Year == candidate.Year &&
			(e.GroupID == nil || *e.GroupID == *candidate.GroupID) {
			report.Group = append(report.Group, dto.ConflictDescriptor{
				Course:  courseName,
				Teacher: teacherName,
				Room:    roomName,
				Time:    e.TimeRange(),
			})
		}
	}
	return report
}

// Create validates, conflict-checks and persists a new entry. The check and
// the insert run in one transaction holding the day's advisory lock, so two
// concurrent writers cannot both pass the check.
func (s *ScheduleService) Create(ctx context.Context, req *dto.CreateScheduleEntryRequest) (*dto.ScheduleEntryResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	var created *model.ScheduleEntry
	err := s.repo.Tx.Do(ctx, func(tx *repository.Repository) error {
		if err := tx.Schedule.LockDay(ctx, req.Day); err != nil {
			return err
		}
		existing, err := tx.Schedule.ListByDay(ctx, req.Day)
		if err != nil {
			return err
		}
		if report := detectConflicts(req, existing, 0); report.HasConflicts() {
			return &ConflictError{Report: report}
		}
		entry := &model.ScheduleEntry{
			ProgramID: req.ProgramID,
			Year:      req.Year,
			CourseID:  req.CourseID,
			TeacherID: req.TeacherID,
			RoomID:    req.RoomID,
			GroupID:   req.GroupID,
			Day:       req.Day,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		}
		if err := tx.Schedule.Create(ctx, entry); err != nil {
			return err
		}
		created = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("schedule entry created",
		zap.Uint("id", created.ID),
		zap.String("day", created.Day),
		zap.String("time", created.TimeRange()))
	full, err := s.repo.Schedule.GetByID(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	resp := toScheduleEntryResponse(full)
	return &resp, nil
}

// Update replaces an entry's fields after conflict-checking the new values
// against every other entry of the target day (the entry itself excluded,
// so keeping its own time range is never a self-conflict).
func (s *ScheduleService) Update(ctx context.Context, id uint, req *dto.UpdateScheduleEntryRequest) (*dto.ScheduleEntryResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	err := s.repo.Tx.Do(ctx, func(tx *repository.Repository) error {
		entry, err := tx.Schedule.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEntryNotFound
			}
			return err
		}
		// Moving between days needs both days locked. Locks are always
		// taken in weekday order so two opposite-direction moves cannot
		// deadlock on each other's day lock.
		days := []string{req.Day}
		if entry.Day != req.Day {
			days = append(days, entry.Day)
			if dayIndex[days[1]] < dayIndex[days[0]] {
				days[0], days[1] = days[1], days[0]
			}
		}
		for _, d := range days {
			if err := tx.Schedule.LockDay(ctx, d); err != nil {
				return err
			}
		}
		existing, err := tx.Schedule.ListByDay(ctx, req.Day)
		if err != nil {
			return err
		}
		if report := detectConflicts(req, existing, id); report.HasConflicts() {
			return &ConflictError{Report: report}
		}
		entry.ProgramID = req.ProgramID
		entry.Year = req.Year
		entry.CourseID = req.CourseID
		entry.TeacherID = req.TeacherID
		entry.RoomID = req.RoomID
		entry.GroupID = req.GroupID
		entry.Day = req.Day
		entry.StartTime = req.StartTime
		entry.EndTime = req.EndTime
		// Preloaded associations may no longer match the new ids.
		entry.Program, entry.Course, entry.Teacher, entry.Room, entry.Group = nil, nil, nil, nil, nil
		return tx.Schedule.Update(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("schedule entry updated", zap.Uint("id", id))
	full, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toScheduleEntryResponse(full)
	return &resp, nil
}

func (s *ScheduleService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		return err
	}
	s.logger.Info("schedule entry deleted", zap.Uint("id", id))
	return nil
}

func (s *ScheduleService) GetByID(ctx context.Context, id uint) (*dto.ScheduleEntryResponse, error) {
	entry, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	resp := toScheduleEntryResponse(entry)
	return &resp, nil
}

// List returns entries matching the filter, each annotated with whether it
// currently conflicts with another stored entry. Annotation is advisory:
// writes reject conflicts, so a true flag normally means data edited out
// from under the checker (e.g. direct SQL).
func (s *ScheduleService) List(ctx context.Context, filter *dto.ScheduleEntryFilter) ([]dto.ScheduleEntryResponse, error) {
	entries, err := s.repo.Schedule.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string][]model.ScheduleEntry)
	for _, e := range entries {
		byDay[e.Day] = append(byDay[e.Day], e)
	}
	out := make([]dto.ScheduleEntryResponse, 0, len(entries))
	for i := range entries {
		resp := toScheduleEntryResponse(&entries[i])
		resp.HasConflict = hasStoredConflict(&entries[i], byDay[entries[i].Day])
		out = append(out, resp)
	}
	return out, nil
}

// hasStoredConflict re-runs the bucket checks between one stored entry and
// its day's other entries.
func hasStoredConflict(entry *model.ScheduleEntry, sameDay []model.ScheduleEntry) bool {
	for i := range sameDay {
		e := &sameDay[i]
		if e.ID == entry.ID {
			continue
		}
		if !overlaps(entry.StartTime, entry.EndTime, e.StartTime, e.EndTime) {
			continue
		}
		if e.RoomID == entry.RoomID || e.TeacherID == entry.TeacherID {
			return true
		}
		if e.ProgramID == entry.ProgramID && e.Year == entry.Year {
			if entry.GroupID == nil || e.GroupID == nil || *e.GroupID == *entry.GroupID {
				return true
			}
		}
	}
	return false
}

func toScheduleEntryResponse(e *model.ScheduleEntry) dto.ScheduleEntryResponse {
	resp := dto.ScheduleEntryResponse{
		ID:         e.ID,
		ProgramID:  e.ProgramID,
		Year:       e.Year,
		CourseID:   e.CourseID,
		TeacherID:  e.TeacherID,
		RoomID:     e.RoomID,
		GroupID:    e.GroupID,
		GroupLabel: e.GroupLabel(),
		Day:        e.Day,
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if e.Program != nil {
		resp.ProgramName = e.Program.Name
	}
	if e.Course != nil {
		resp.CourseName = e.Course.Name
		resp.CourseType = e.Course.Type
	}
	if e.Teacher != nil {
		resp.TeacherName = e.Teacher.FullName()
	}
	if e.Room != nil {
		resp.RoomName = e.Room.Name
	}
	return resp
}
