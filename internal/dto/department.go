package dto

// CreateDepartmentRequest — new department.
type CreateDepartmentRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateDepartmentRequest — partial department update.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// DepartmentResponse — department with its program count.
type DepartmentResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ProgramCount int64  `json:"program_count"`
	CreatedAt    string `json:"created_at"`
}
