package model

import "time"

// Room — maps to rooms.
type Room struct {
	ID        uint      `gorm:"primaryKey"                         json:"id"`
	Name      string    `gorm:"type:varchar(50);not null"          json:"name"`
	Capacity  int       `gorm:"not null"                           json:"capacity"`
	Type      string    `gorm:"type:varchar(20);not null"          json:"type"` // Amphi | Salle TD | Salle TP
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Room) TableName() string { return "rooms" }
