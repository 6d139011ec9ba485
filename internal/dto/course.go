package dto

// CreateCourseRequest — new course.
type CreateCourseRequest struct {
	Name      string `json:"name"       binding:"required,min=2,max=100"`
	Code      string `json:"code"       binding:"required,min=2,max=20"`
	Type      string `json:"type"       binding:"required,oneof=Cours TD TP"`
	Duration  int    `json:"duration"   binding:"required,min=1,max=10"`
	ProgramID uint   `json:"program_id" binding:"required"`
	TeacherID uint   `json:"teacher_id" binding:"required"`
}

// UpdateCourseRequest — partial course update.
type UpdateCourseRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=2,max=100"`
	Code      *string `json:"code"       binding:"omitempty,min=2,max=20"`
	Type      *string `json:"type"       binding:"omitempty,oneof=Cours TD TP"`
	Duration  *int    `json:"duration"   binding:"omitempty,min=1,max=10"`
	ProgramID *uint   `json:"program_id"`
	TeacherID *uint   `json:"teacher_id"`
}

// CourseResponse — course with display names resolved.
type CourseResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Type        string `json:"type"`
	Duration    int    `json:"duration"`
	ProgramID   uint   `json:"program_id"`
	ProgramName string `json:"program_name,omitempty"`
	TeacherID   uint   `json:"teacher_id"`
	TeacherName string `json:"teacher_name,omitempty"`
	CreatedAt   string `json:"created_at"`
}
