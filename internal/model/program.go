package model

import "time"

// Program — curriculum track (filière), maps to programs.
type Program struct {
	ID           uint      `gorm:"primaryKey"                         json:"id"`
	Name         string    `gorm:"type:varchar(100);not null"         json:"name"`
	DepartmentID uint      `gorm:"not null"                           json:"department_id"`
	Duration     int       `json:"duration,omitempty"` // years
	Year         int       `gorm:"not null"                           json:"year"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (Program) TableName() string { return "programs" }
