package model

import "time"

// Teacher — teaching staff profile linked to a user account, maps to teachers.
type Teacher struct {
	ID        uint      `gorm:"primaryKey"                         json:"id"`
	UserID    uint      `gorm:"not null"                           json:"user_id"`
	FirstName string    `gorm:"type:varchar(50);not null"          json:"first_name"`
	LastName  string    `gorm:"type:varchar(50);not null"          json:"last_name"`
	Type      string    `gorm:"type:varchar(20);not null"          json:"type"` // Permanent | Vacataire
	MaxHours  int       `gorm:"not null;default:20"                json:"max_hours"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Teacher) TableName() string { return "teachers" }

// FullName returns "FirstName LastName" for display and conflict messages.
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
