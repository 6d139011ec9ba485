package model

import "time"

// Department — maps to departments.
type Department struct {
	ID          uint      `gorm:"primaryKey"                         json:"id"`
	Name        string    `gorm:"type:varchar(100);not null"         json:"name"`
	Description string    `gorm:"type:text"                          json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Department) TableName() string { return "departments" }
