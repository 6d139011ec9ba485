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
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentTaken    = errors.New("un département porte déjà ce nom")
	ErrDepartmentInUse    = errors.New("department still has programs")
)

// DepartmentService — department management.
type DepartmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, logger: logger}
}

func (s *DepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if _, err := s.repo.Department.GetByName(ctx, req.Name); err == nil {
		return nil, ErrDepartmentTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	dept := &model.Department{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Department.Create(ctx, dept); err != nil {
		return nil, err
	}
	s.logger.Info("department created", zap.Uint("id", dept.ID), zap.String("name", dept.Name))
	resp := toDepartmentResponse(dept, 0)
	return &resp, nil
}

func (s *DepartmentService) GetByID(ctx context.Context, id uint) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	count, err := s.repo.Department.CountPrograms(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toDepartmentResponse(dept, count)
	return &resp, nil
}

func (s *DepartmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		count, err := s.repo.Department.CountPrograms(ctx, depts[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toDepartmentResponse(&depts[i], count))
	}
	return out, nil
}

func (s *DepartmentService) Update(ctx context.Context, id uint, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	if req.Name != nil && *req.Name != dept.Name {
		if _, err := s.repo.Department.GetByName(ctx, *req.Name); err == nil {
			return nil, ErrDepartmentTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}
	if err := s.repo.Department.Update(ctx, dept); err != nil {
		return nil, err
	}
	count, err := s.repo.Department.CountPrograms(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toDepartmentResponse(dept, count)
	return &resp, nil
}

// Delete refuses to remove a department that still owns programs.
func (s *DepartmentService) Delete(ctx context.Context, id uint) error {
	count, err := s.repo.Department.CountPrograms(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDepartmentInUse
	}
	if err := s.repo.Department.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		return err
	}
	return nil
}

func toDepartmentResponse(d *model.Department, programCount int64) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		ProgramCount: programCount,
		CreatedAt:    d.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
