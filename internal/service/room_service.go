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

var ErrRoomNotFound = errors.New("room not found")

// RoomService — room management.
type RoomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewRoomService(repo *repository.Repository, logger *zap.Logger) *RoomService {
	return &RoomService{repo: repo, logger: logger}
}

func (s *RoomService) Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	room := &model.Room{
		Name:     req.Name,
		Capacity: req.Capacity,
		Type:     req.Type,
	}
	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, err
	}
	s.logger.Info("room created", zap.Uint("id", room.ID), zap.String("name", room.Name))
	resp := toRoomResponse(room)
	return &resp, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (*dto.RoomResponse, error) {
	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	resp := toRoomResponse(room)
	return &resp, nil
}

func (s *RoomService) List(ctx context.Context) ([]dto.RoomResponse, error) {
	rooms, err := s.repo.Room.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, toRoomResponse(&rooms[i]))
	}
	return out, nil
}

func (s *RoomService) Update(ctx context.Context, id uint, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Type != nil {
		room.Type = *req.Type
	}
	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, err
	}
	resp := toRoomResponse(room)
	return &resp, nil
}

func (s *RoomService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Room.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	return nil
}

func toRoomResponse(r *model.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Type:      r.Type,
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
