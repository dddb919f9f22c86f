package model

import "time"

// TestDriveBookingEntity represents the test_drive_booking table entity
type TestDriveBookingEntity struct {
	ID          string     `db:"id" json:"id"`
	CarID       string     `db:"car_id" json:"car_id"`
	UserID      uint64     `db:"user_id" json:"user_id"`
	BookingDate time.Time  `db:"booking_date" json:"booking_date"`
	StartTime   string     `db:"start_time" json:"start_time"`
	EndTime     string     `db:"end_time" json:"end_time"`
	Status      string     `db:"status" json:"status"`
	Notes       string     `db:"notes" json:"notes"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// BookTestDriveRequest schedules a test drive for the caller.
type BookTestDriveRequest struct {
	CarID       string `json:"car_id" validate:"required"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Notes       string `json:"notes"`
}

type BookTestDriveResponse struct {
	BookingID   string `json:"booking_id"`
	Status      string `json:"status"`
	BookingDate string `json:"booking_date"`
}
