package dto

import "fmt"

// ── requests ──

// CreateScheduleEntryRequest — propose a new schedule entry.
// GroupID absent means the entry applies to every group (wildcard).
type CreateScheduleEntryRequest struct {
	ProgramID uint   `json:"program_id" binding:"required"`
	Year      int    `json:"year"       binding:"required,min=1,max=5"`
	CourseID  uint   `json:"course_id"  binding:"required"`
	TeacherID uint   `json:"teacher_id" binding:"required"`
	RoomID    uint   `json:"room_id"    binding:"required"`
	GroupID   *uint  `json:"group_id"`
	Day       string `json:"day"        binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"   binding:"required"`
}

// UpdateScheduleEntryRequest — replace an entry's fields (conflict-checked
// against all entries except the target itself).
type UpdateScheduleEntryRequest = CreateScheduleEntryRequest

// ScheduleEntryFilter — optional list filter.
type ScheduleEntryFilter struct {
	ProgramID *uint `form:"program_id"`
	Year      *int  `form:"year"`
	TeacherID *uint `form:"teacher_id"`
}

// ── responses ──

// ScheduleEntryResponse — entry with display names resolved.
type ScheduleEntryResponse struct {
	ID          uint   `json:"id"`
	ProgramID   uint   `json:"program_id"`
	ProgramName string `json:"program_name,omitempty"`
	Year        int    `json:"year"`
	CourseID    uint   `json:"course_id"`
	CourseName  string `json:"course_name,omitempty"`
	CourseType  string `json:"course_type,omitempty"`
	TeacherID   uint   `json:"teacher_id"`
	TeacherName string `json:"teacher_name,omitempty"`
	RoomID      uint   `json:"room_id"`
	RoomName    string `json:"room_name,omitempty"`
	GroupID     *uint  `json:"group_id,omitempty"`
	GroupLabel  string `json:"group_label"` // group name, or "Tous" for wildcard
	Day         string `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	HasConflict bool   `json:"has_conflict"`
	CreatedAt   string `json:"created_at"`
}

// ── conflict report ──

// ConflictDescriptor describes one existing entry that collides with a
// candidate. Only the counterpart fields relevant to the bucket are set:
// a room conflict names the opposing teacher, a teacher conflict the
// opposing room, a group conflict both.
type ConflictDescriptor struct {
	Course  string `json:"course"`
	Teacher string `json:"teacher,omitempty"`
	Room    string `json:"room,omitempty"`
	Group   string `json:"group,omitempty"`
	Time    string `json:"time"` // "HH:MM-HH:MM"
}

// ConflictReport partitions conflicts by the resource on which they occur.
type ConflictReport struct {
	Room    []ConflictDescriptor `json:"room"`
	Teacher []ConflictDescriptor `json:"teacher"`
	Group   []ConflictDescriptor `json:"group"`
}

// HasConflicts reports whether any bucket is non-empty.
func (r *ConflictReport) HasConflicts() bool {
	return len(r.Room) > 0 || len(r.Teacher) > 0 || len(r.Group) > 0
}

// Messages renders every conflict as a human-readable description,
// in bucket order: room, teacher, group.
func (r *ConflictReport) Messages() []string {
	var msgs []string
	for _, c := range r.Room {
		msgs = append(msgs, fmt.Sprintf("Conflit de salle: %s avec %s (Groupe: %s) à %s",
			c.Course, c.Teacher, c.Group, c.Time))
	}
	for _, c := range r.Teacher {
		msgs = append(msgs, fmt.Sprintf("Enseignant occupé: %s en %s (Groupe: %s) à %s",
			c.Course, c.Room, c.Group, c.Time))
	}
	for _, c := range r.Group {
		msgs = append(msgs, fmt.Sprintf("Groupe occupé: %s avec %s en %s à %s",
			c.Course, c.Teacher, c.Room, c.Time))
	}
	return msgs
}

// ── timetable grid ──

// TimeSlotResponse — one fixed display slot of the weekly grid.
type TimeSlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimetableResponse — the weekly grid plus the flat ordered entry list.
// Grid maps day name -> slot index -> entries touching that slot; an entry
// spanning several slots appears in each of them.
type TimetableResponse struct {
	Days       []string                             `json:"days"`
	TimeSlots  []TimeSlotResponse                   `json:"time_slots"`
	Grid       map[string][][]ScheduleEntryResponse `json:"grid"`
	Entries    []ScheduleEntryResponse              `json:"entries"`
	TotalHours float64                              `json:"total_hours"`
}
