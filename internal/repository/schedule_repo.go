package repository

import (
	"context"

	"gorm.io/gorm"

	"faculty-schedule/backend/internal/dto"
	"faculty-schedule/backend/internal/model"
)

// ScheduleRepository — schedule entry data access.
//
// LockDay takes a transaction-scoped Postgres advisory lock keyed on the day,
// so two writers targeting the same day run their conflict check + insert
// serially. Callers must invoke it inside TxManager.Do before reading the
// day's entries.
type ScheduleRepository interface {
	Create(ctx context.Context, entry *model.ScheduleEntry) error
	GetByID(ctx context.Context, id uint) (*model.ScheduleEntry, error)
	List(ctx context.Context, filter *dto.ScheduleEntryFilter) ([]model.ScheduleEntry, error)
	ListByDay(ctx context.Context, day string) ([]model.ScheduleEntry, error)
	ListByTeacher(ctx context.Context, teacherID uint) ([]model.ScheduleEntry, error)
	ListForStudent(ctx context.Context, programID uint, year int, groupID *uint) ([]model.ScheduleEntry, error)
	ListRecent(ctx context.Context, limit int) ([]model.ScheduleEntry, error)
	Update(ctx context.Context, entry *model.ScheduleEntry) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	LockDay(ctx context.Context, day string) error
}

type scheduleRepo struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

// dayOrder sorts entries in weekday then start-time order.
const dayOrder = "array_position(ARRAY['Lundi','Mardi','Mercredi','Jeudi','Vendredi','Samedi']::text[], day), start_time"

func (r *scheduleRepo) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Program").
		Preload("Course").
		Preload("Teacher").
		Preload("Room").
		Preload("Group")
}

func (r *scheduleRepo) Create(ctx context.Context, entry *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, id uint) (*model.ScheduleEntry, error) {
	var entry model.ScheduleEntry
	if err := r.withAssociations(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleRepo) List(ctx context.Context, filter *dto.ScheduleEntryFilter) ([]model.ScheduleEntry, error) {
	query := r.withAssociations(ctx)
	if filter != nil {
		if filter.ProgramID != nil {
			query = query.Where("program_id = ?", *filter.ProgramID)
		}
		if filter.Year != nil {
			query = query.Where("year = ?", *filter.Year)
		}
		if filter.TeacherID != nil {
			query = query.Where("teacher_id = ?", *filter.TeacherID)
		}
	}
	var entries []model.ScheduleEntry
	err := query.Order(dayOrder).Find(&entries).Error
	return entries, err
}

func (r *scheduleRepo) ListByDay(ctx context.Context, day string) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.withAssociations(ctx).
		Where("day = ?", day).
		Order("start_time ASC").
		Find(&entries).Error
	return entries, err
}

func (r *scheduleRepo) ListByTeacher(ctx context.Context, teacherID uint) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.withAssociations(ctx).
		Where("teacher_id = ?", teacherID).
		Order(dayOrder).
		Find(&entries).Error
	return entries, err
}

// ListForStudent returns the cohort's entries visible to one group: entries
// addressed to that group plus wildcard entries (group_id IS NULL). A nil
// groupID returns the whole cohort.
func (r *scheduleRepo) ListForStudent(ctx context.Context, programID uint, year int, groupID *uint) ([]model.ScheduleEntry, error) {
	query := r.withAssociations(ctx).
		Where("program_id = ? AND year = ?", programID, year)
	if groupID != nil {
		query = query.Where("group_id = ? OR group_id IS NULL", *groupID)
	}
	var entries []model.ScheduleEntry
	err := query.Order(dayOrder).Find(&entries).Error
	return entries, err
}

func (r *scheduleRepo) ListRecent(ctx context.Context, limit int) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.withAssociations(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *scheduleRepo) Update(ctx context.Context, entry *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.ScheduleEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *scheduleRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ScheduleEntry{}).Count(&count).Error
	return count, err
}

func (r *scheduleRepo) LockDay(ctx context.Context, day string) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext('schedule:' || ?))", day).Error
}
