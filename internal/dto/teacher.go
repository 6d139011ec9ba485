package dto

// CreateTeacherRequest — new teacher profile plus its user account.
// When Password is empty a random one is generated and emailed.
type CreateTeacherRequest struct {
	Username  string `json:"username"   binding:"required,min=3,max=20"`
	Email     string `json:"email"      binding:"required,email"`
	Password  string `json:"password"   binding:"omitempty,min=6"`
	FirstName string `json:"first_name" binding:"required,min=2,max=50"`
	LastName  string `json:"last_name"  binding:"required,min=2,max=50"`
	Type      string `json:"type"       binding:"required,oneof=Permanent Vacataire"`
	MaxHours  int    `json:"max_hours"  binding:"omitempty,min=1,max=40"`
}

// UpdateTeacherRequest — partial teacher update.
type UpdateTeacherRequest struct {
	Email     *string `json:"email"      binding:"omitempty,email"`
	Password  *string `json:"password"   binding:"omitempty,min=6"`
	FirstName *string `json:"first_name" binding:"omitempty,min=2,max=50"`
	LastName  *string `json:"last_name"  binding:"omitempty,min=2,max=50"`
	Type      *string `json:"type"       binding:"omitempty,oneof=Permanent Vacataire"`
	MaxHours  *int    `json:"max_hours"  binding:"omitempty,min=1,max=40"`
}

// TeacherResponse — teacher profile with account fields resolved.
type TeacherResponse struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Type      string `json:"type"`
	MaxHours  int    `json:"max_hours"`
	CreatedAt string `json:"created_at"`
}
