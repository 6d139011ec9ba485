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

var ErrGroupNotFound = errors.New("group not found")

const defaultGroupSize = 30

// GroupService — student group management.
type GroupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewGroupService(repo *repository.Repository, logger *zap.Logger) *GroupService {
	return &GroupService{repo: repo, logger: logger}
}

func (s *GroupService) Create(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	if _, err := s.repo.Program.GetByID(ctx, req.ProgramID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	size := req.Size
	if size == 0 {
		size = defaultGroupSize
	}
	group := &model.StudentGroup{
		Name:      req.Name,
		ProgramID: req.ProgramID,
		Size:      size,
	}
	if err := s.repo.Group.Create(ctx, group); err != nil {
		return nil, err
	}
	s.logger.Info("group created", zap.Uint("id", group.ID), zap.String("name", group.Name))
	return s.GetByID(ctx, group.ID)
}

func (s *GroupService) GetByID(ctx context.Context, id uint) (*dto.GroupResponse, error) {
	group, err := s.repo.Group.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	resp := toGroupResponse(group)
	return &resp, nil
}

func (s *GroupService) List(ctx context.Context) ([]dto.GroupResponse, error) {
	groups, err := s.repo.Group.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, toGroupResponse(&groups[i]))
	}
	return out, nil
}

func (s *GroupService) ListByProgram(ctx context.Context, programID uint) ([]dto.GroupResponse, error) {
	groups, err := s.repo.Group.ListByProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, toGroupResponse(&groups[i]))
	}
	return out, nil
}

func (s *GroupService) Update(ctx context.Context, id uint, req *dto.UpdateGroupRequest) (*dto.GroupResponse, error) {
	group, err := s.repo.Group.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	if req.ProgramID != nil {
		if _, err := s.repo.Program.GetByID(ctx, *req.ProgramID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProgramNotFound
			}
			return nil, err
		}
		group.ProgramID = *req.ProgramID
		group.Program = nil
	}
	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Size != nil {
		group.Size = *req.Size
	}
	if err := s.repo.Group.Update(ctx, group); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *GroupService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Group.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGroupNotFound
		}
		return err
	}
	return nil
}

func toGroupResponse(g *model.StudentGroup) dto.GroupResponse {
	resp := dto.GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		ProgramID: g.ProgramID,
		Size:      g.Size,
		CreatedAt: g.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if g.Program != nil {
		resp.ProgramName = g.Program.Name
	}
	return resp
}
