package model

import "time"

// StudentGroup — a named subgroup of a program cohort, maps to student_groups.
// Schedule entries with no group apply to every group of the program/year.
type StudentGroup struct {
	ID        uint      `gorm:"primaryKey"                         json:"id"`
	Name      string    `gorm:"type:varchar(50);not null"          json:"name"`
	ProgramID uint      `gorm:"not null"                           json:"program_id"`
	Size      int       `gorm:"not null;default:30"                json:"size"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

func (StudentGroup) TableName() string { return "student_groups" }
