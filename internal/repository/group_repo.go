package repository

import (
	"context"

	"gorm.io/gorm"

	"faculty-schedule/backend/internal/model"
)

// GroupRepository — student group data access.
type GroupRepository interface {
	Create(ctx context.Context, group *model.StudentGroup) error
	GetByID(ctx context.Context, id uint) (*model.StudentGroup, error)
	List(ctx context.Context) ([]model.StudentGroup, error)
	ListByProgram(ctx context.Context, programID uint) ([]model.StudentGroup, error)
	Update(ctx context.Context, group *model.StudentGroup) error
	Delete(ctx context.Context, id uint) error
}

type groupRepo struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) GroupRepository {
	return &groupRepo{db: db}
}

func (r *groupRepo) Create(ctx context.Context, group *model.StudentGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepo) GetByID(ctx context.Context, id uint) (*model.StudentGroup, error) {
	var group model.StudentGroup
	err := r.db.WithContext(ctx).
		Preload("Program").
		First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepo) List(ctx context.Context) ([]model.StudentGroup, error) {
	var groups []model.StudentGroup
	err := r.db.WithContext(ctx).
		Preload("Program").
		Order("name ASC").
		Find(&groups).Error
	return groups, err
}

func (r *groupRepo) ListByProgram(ctx context.Context, programID uint) ([]model.StudentGroup, error) {
	var groups []model.StudentGroup
	err := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("name ASC").
		Find(&groups).Error
	return groups, err
}

func (r *groupRepo) Update(ctx context.Context, group *model.StudentGroup) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *groupRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.StudentGroup{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
