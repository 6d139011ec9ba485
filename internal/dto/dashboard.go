package dto

// TeacherHours — weekly scheduled hours for one teacher.
type TeacherHours struct {
	TeacherID uint    `json:"teacher_id"`
	Name      string  `json:"name"`
	Hours     float64 `json:"hours"`
}

// DashboardStats — admin dashboard aggregates.
type DashboardStats struct {
	DepartmentCount int64                   `json:"department_count"`
	TeacherCount    int64                   `json:"teacher_count"`
	RoomCount       int64                   `json:"room_count"`
	EntryCount      int64                   `json:"entry_count"`
	RecentEntries   []ScheduleEntryResponse `json:"recent_entries"`
	TeacherHours    []TeacherHours          `json:"teacher_hours"` // sorted by hours, descending
}
