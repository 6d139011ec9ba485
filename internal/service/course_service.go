package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/model"
	"faculty-schedule/backend/internal/repository"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrCourseCodeTaken = errors.New("un cours porte déjà ce code")
)

// CourseService — course management.
type CourseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewCourseService(repo *repository.Repository, logger *zap.Logger) *CourseService {
	return &CourseService{repo: repo, logger: logger}
}

func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if _, err := s.repo.Course.GetByCode(ctx, req.Code); err == nil {
		return nil, ErrCourseCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.repo.Program.GetByID(ctx, req.ProgramID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Teacher.GetByID(ctx, req.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	course := &model.Course{
		Name:      req.Name,
		Code:      req.Code,
		Type:      req.Type,
		Duration:  req.Duration,
		ProgramID: req.ProgramID,
		TeacherID: req.TeacherID,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		return nil, err
	}
	s.logger.Info("course created", zap.Uint("id", course.ID), zap.String("code", course.Code))
	return s.GetByID(ctx, course.ID)
}

func (s *CourseService) GetByID(ctx context.Context, id uint) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *CourseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, toCourseResponse(&courses[i]))
	}
	return out, nil
}

func (s *CourseService) ListByProgram(ctx context.Context, programID uint) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.ListByProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, toCourseResponse(&courses[i]))
	}
	return out, nil
}

func (s *CourseService) Update(ctx context.Context, id uint, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if req.Code != nil && *req.Code != course.Code {
		if _, err := s.repo.Course.GetByCode(ctx, *req.Code); err == nil {
			return nil, ErrCourseCodeTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		course.Code = *req.Code
	}
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Type != nil {
		course.Type = *req.Type
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.ProgramID != nil {
		if _, err := s.repo.Program.GetByID(ctx, *req.ProgramID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProgramNotFound
			}
			return nil, err
		}
		course.ProgramID = *req.ProgramID
		course.Program = nil
	}
	if req.TeacherID != nil {
		if _, err := s.repo.Teacher.GetByID(ctx, *req.TeacherID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTeacherNotFound
			}
			return nil, err
		}
		course.TeacherID = *req.TeacherID
		course.Teacher = nil
	}
	if err := s.repo.Course.Update(ctx, course); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *CourseService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	return nil
}

func toCourseResponse(c *model.Course) dto.CourseResponse {
	resp := dto.CourseResponse{
		ID:        c.ID,
		Name:      c.Name,
		Code:      c.Code,
		Type:      c.Type,
		Duration:  c.Duration,
		ProgramID: c.ProgramID,
		TeacherID: c.TeacherID,
		CreatedAt: c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if c.Program != nil {
		resp.ProgramName = c.Program.Name
	}
	if c.Teacher != nil {
		resp.TeacherName = c.Teacher.FullName()
	}
	return resp
}
