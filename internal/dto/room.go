package dto

// CreateRoomRequest — new room.
type CreateRoomRequest struct {
	Name     string `json:"name"     binding:"required,min=1,max=50"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	Type     string `json:"type"     binding:"required,oneof=Amphi 'Salle TD' 'Salle TP'"`
}

// UpdateRoomRequest — partial room update.
type UpdateRoomRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=1,max=50"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1"`
	Type     *string `json:"type"     binding:"omitempty,oneof=Amphi 'Salle TD' 'Salle TP'"`
}

// RoomResponse — room record.
type RoomResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}
