package repository

import (
	"context"

	"gorm.io/gorm"

	"faculty-schedule/backend/internal/model"
)

// ProgramRepository — program data access.
type ProgramRepository interface {
	Create(ctx context.Context, program *model.Program) error
	GetByID(ctx context.Context, id uint) (*model.Program, error)
	List(ctx context.Context) ([]model.Program, error)
	ListByDepartment(ctx context.Context, departmentID uint) ([]model.Program, error)
	Update(ctx context.Context, program *model.Program) error
	Delete(ctx context.Context, id uint) error
}

type programRepo struct {
	db *gorm.DB
}

func NewProgramRepo(db *gorm.DB) ProgramRepository {
	return &programRepo{db: db}
}

func (r *programRepo) Create(ctx context.Context, program *model.Program) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *programRepo) GetByID(ctx context.Context, id uint) (*model.Program, error) {
	var program model.Program
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&program, id).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *programRepo) List(ctx context.Context) ([]model.Program, error) {
	var programs []model.Program
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("name ASC, year ASC").
		Find(&programs).Error
	return programs, err
}

func (r *programRepo) ListByDepartment(ctx context.Context, departmentID uint) ([]model.Program, error) {
	var programs []model.Program
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("name ASC, year ASC").
		Find(&programs).Error
	return programs, err
}

func (r *programRepo) Update(ctx context.Context, program *model.Program) error {
	return r.db.WithContext(ctx).Save(program).Error
}

func (r *programRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Program{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
