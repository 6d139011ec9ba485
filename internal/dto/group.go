package dto

// CreateGroupRequest — new student group.
type CreateGroupRequest struct {
	Name      string `json:"name"       binding:"required,min=1,max=50"`
	ProgramID uint   `json:"program_id" binding:"required"`
	Size      int    `json:"size"       binding:"omitempty,min=1,max=500"`
}

// UpdateGroupRequest — partial group update.
type UpdateGroupRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=1,max=50"`
	ProgramID *uint   `json:"program_id"`
	Size      *int    `json:"size"       binding:"omitempty,min=1,max=500"`
}

// GroupResponse — student group with program name resolved.
type GroupResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ProgramID   uint   `json:"program_id"`
	ProgramName string `json:"program_name,omitempty"`
	Size        int    `json:"size"`
	CreatedAt   string `json:"created_at"`
}
