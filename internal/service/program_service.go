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

var ErrProgramNotFound = errors.New("program not found")

// ProgramService — program (filière) management.
type ProgramService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewProgramService(repo *repository.Repository, logger *zap.Logger) *ProgramService {
	return &ProgramService{repo: repo, logger: logger}
}

func (s *ProgramService) Create(ctx context.Context, req *dto.CreateProgramRequest) (*dto.ProgramResponse, error) {
	if _, err := s.repo.Department.GetByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	program := &model.Program{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Duration:     req.Duration,
		Year:         req.Year,
	}
	if err := s.repo.Program.Create(ctx, program); err != nil {
		return nil, err
	}
	s.logger.Info("program created", zap.Uint("id", program.ID), zap.String("name", program.Name))
	return s.GetByID(ctx, program.ID)
}

func (s *ProgramService) GetByID(ctx context.Context, id uint) (*dto.ProgramResponse, error) {
	program, err := s.repo.Program.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	resp := toProgramResponse(program)
	return &resp, nil
}

func (s *ProgramService) List(ctx context.Context) ([]dto.ProgramResponse, error) {
	programs, err := s.repo.Program.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProgramResponse, 0, len(programs))
	for i := range programs {
		out = append(out, toProgramResponse(&programs[i]))
	}
	return out, nil
}

func (s *ProgramService) Update(ctx context.Context, id uint, req *dto.UpdateProgramRequest) (*dto.ProgramResponse, error) {
	program, err := s.repo.Program.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if req.DepartmentID != nil {
		if _, err := s.repo.Department.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDepartmentNotFound
			}
			return nil, err
		}
		program.DepartmentID = *req.DepartmentID
		program.Department = nil
	}
	if req.Name != nil {
		program.Name = *req.Name
	}
	if req.Duration != nil {
		program.Duration = *req.Duration
	}
	if req.Year != nil {
		program.Year = *req.Year
	}
	if err := s.repo.Program.Update(ctx, program); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *ProgramService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Program.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	return nil
}

func toProgramResponse(p *model.Program) dto.ProgramResponse {
	resp := dto.ProgramResponse{
		ID:           p.ID,
		Name:         p.Name,
		DepartmentID: p.DepartmentID,
		Duration:     p.Duration,
		Year:         p.Year,
		CreatedAt:    p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if p.Department != nil {
		resp.DepartmentName = p.Department.Name
	}
	return resp
}
