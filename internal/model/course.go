package model

import "time"

// Course — maps to courses.
type Course struct {
	ID        uint      `gorm:"primaryKey"                         json:"id"`
	Name      string    `gorm:"type:varchar(100);not null"         json:"name"`
	Code      string    `gorm:"type:varchar(20);not null;unique"   json:"code"`
	Type      string    `gorm:"type:varchar(20);not null"          json:"type"` // Cours | TD | TP
	Duration  int       `gorm:"not null"                           json:"duration"` // hours
	ProgramID uint      `gorm:"not null"                           json:"program_id"`
	TeacherID uint      `gorm:"not null"                           json:"teacher_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

func (Course) TableName() string { return "courses" }
