package model

import "time"

// SavedCarEntity represents the user_saved_car join table. The
// (user_id, car_id) pair is unique; the constraint backstops concurrent
// toggles.
type SavedCarEntity struct {
	UserID  uint64    `db:"user_id" json:"user_id"`
	CarID   string    `db:"car_id" json:"car_id"`
	SavedAt time.Time `db:"saved_at" json:"saved_at"`
}

type ToggleSavedCarResponse struct {
	Saved   bool   `json:"saved"`
	Message string `json:"message"`
}
