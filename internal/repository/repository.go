package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every data-access interface.
type Repository struct {
	User       UserRepository
	Department DepartmentRepository
	Program    ProgramRepository
	Teacher    TeacherRepository
	Room       RoomRepository
	Course     CourseRepository
	Group      GroupRepository
	Schedule   ScheduleRepository
	Tx         TxManager
}

// NewRepository builds the aggregate bound to a gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Department: NewDepartmentRepo(db),
		Program:    NewProgramRepo(db),
		Teacher:    NewTeacherRepo(db),
		Room:       NewRoomRepo(db),
		Course:     NewCourseRepo(db),
		Group:      NewGroupRepo(db),
		Schedule:   NewScheduleRepo(db),
		Tx:         &gormTxManager{db: db},
	}
}

// TxManager runs a function inside one database transaction, handing it a
// Repository bound to that transaction. Conflict detection and the
// subsequent write must share a transaction so that concurrent writers
// cannot both pass the check (see ScheduleRepository.LockDay).
type TxManager interface {
	Do(ctx context.Context, fn func(txRepo *Repository) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func (m *gormTxManager) Do(ctx context.Context, fn func(txRepo *Repository) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
