package dto

// ── requests ──

// LoginRequest — credentials login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest — student self-registration.
// ProgramID and Year identify the student's cohort.
type RegisterRequest struct {
	Username  string `json:"username"   binding:"required,min=3,max=20"`
	Email     string `json:"email"      binding:"required,email"`
	Password  string `json:"password"   binding:"required,min=6"`
	ProgramID uint   `json:"program_id" binding:"required"`
	Year      int    `json:"year"       binding:"required,min=1,max=5"`
}

// RefreshRequest — exchange a refresh token for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ── responses ──

// TokenResponse — token pair plus the role-based landing route.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // seconds
	RedirectTo   string       `json:"redirect_to"`
	User         UserResponse `json:"user"`
}

// UserResponse — sanitized account info.
type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ProgramID *uint  `json:"program_id,omitempty"`
	Year      *int   `json:"year,omitempty"`
}
