package model

import "time"

// ScheduleEntry — one placed (course, teacher, room, group?, day, time range)
// tuple, maps to schedule_entries. The central entity of the scheduling core.
//
// StartTime and EndTime are zero-padded "HH:MM" wall-clock strings, so
// lexicographic comparison equals chronological comparison. GroupID nil means
// the entry applies to every group of the program/year (wildcard).
type ScheduleEntry struct {
	ID        uint      `gorm:"primaryKey"                         json:"id"`
	ProgramID uint      `gorm:"not null"                           json:"program_id"`
	Year      int       `gorm:"not null"                           json:"year"`
	CourseID  uint      `gorm:"not null"                           json:"course_id"`
	TeacherID uint      `gorm:"not null"                           json:"teacher_id"`
	RoomID    uint      `gorm:"not null"                           json:"room_id"`
	GroupID   *uint     `json:"group_id,omitempty"`
	Day       string    `gorm:"type:varchar(10);not null"          json:"day"`
	StartTime string    `gorm:"type:varchar(5);not null"           json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null"           json:"end_time"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Program *Program      `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Course  *Course       `gorm:"foreignKey:CourseID"  json:"course,omitempty"`
	Teacher *Teacher      `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Room    *Room         `gorm:"foreignKey:RoomID"    json:"room,omitempty"`
	Group   *StudentGroup `gorm:"foreignKey:GroupID"   json:"group,omitempty"`
}

func (ScheduleEntry) TableName() string { return "schedule_entries" }

// GroupLabel returns the group name, or "Tous" for a wildcard entry.
func (e *ScheduleEntry) GroupLabel() string {
	if e.Group != nil {
		return e.Group.Name
	}
	return "Tous"
}

// TimeRange returns the "HH:MM-HH:MM" display form.
func (e *ScheduleEntry) TimeRange() string {
	return e.StartTime + "-" + e.EndTime
}
