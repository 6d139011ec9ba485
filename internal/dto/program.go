package dto

// CreateProgramRequest — new program (filière).
type CreateProgramRequest struct {
	Name         string `json:"name"          binding:"required,min=2,max=100"`
	DepartmentID uint   `json:"department_id" binding:"required"`
	Duration     int    `json:"duration"      binding:"omitempty,min=1,max=8"`
	Year         int    `json:"year"          binding:"required,min=1,max=5"`
}

// UpdateProgramRequest — partial program update.
type UpdateProgramRequest struct {
	Name         *string `json:"name"          binding:"omitempty,min=2,max=100"`
	DepartmentID *uint   `json:"department_id"`
	Duration     *int    `json:"duration"      binding:"omitempty,min=1,max=8"`
	Year         *int    `json:"year"          binding:"omitempty,min=1,max=5"`
}

// ProgramResponse — program with its department name resolved.
type ProgramResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	DepartmentID   uint   `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
	Duration       int    `json:"duration,omitempty"`
	Year           int    `json:"year"`
	CreatedAt      string `json:"created_at"`
}
