package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User — account record, maps to users.
// Students carry ProgramID and Year; teachers link to a Teacher profile.
type User struct {
	ID           uint      `gorm:"primaryKey"                          json:"id"`
	Username     string    `gorm:"type:varchar(20);not null;unique"    json:"username"`
	Email        string    `gorm:"type:varchar(120);not null;unique"   json:"email"`
	PasswordHash string    `gorm:"type:varchar(255)"                   json:"-"`
	Role         string    `gorm:"type:varchar(20);not null"           json:"role"` // admin | teacher | student
	ProgramID    *uint     `json:"program_id,omitempty"`
	Year         *int      `json:"year,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"  json:"created_at"`

	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

func (User) TableName() string { return "users" }

// SetPassword hashes and stores the password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a candidate password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
