package testdrive

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/mazhilunthu/car-marketplace/constant"
	"github.com/mazhilunthu/car-marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type TestDriveRepository interface {
	// GetLatestActive returns the user's most recent booking for the car
	// among PENDING / CONFIRMED / COMPLETED, or nil.
	GetLatestActive(ctx context.Context, userID uint64, carID string) (*model.TestDriveBookingEntity, error)
	// HasOpenBooking reports whether the user already holds a PENDING or
	// CONFIRMED booking for the car.
	HasOpenBooking(ctx context.Context, userID uint64, carID string) (bool, error)
	Create(ctx context.Context, booking *model.TestDriveBookingEntity) error
}

func NewTestDriveRepository(conn *sqlx.DB) TestDriveRepository {
	return &SQL{conn: conn}
}

const (
	bookingColumns = `id, car_id, user_id, booking_date, start_time, end_time, status, notes, created_at, updated_at`

	getLatestActiveQuery = `SELECT ` + bookingColumns + ` FROM test_drive_booking
WHERE user_id = ? AND car_id = ? AND status IN (?, ?, ?)
ORDER BY created_at DESC
LIMIT 1`

	countOpenBookingsQuery = `SELECT COUNT(*) FROM test_drive_booking WHERE user_id = ? AND car_id = ? AND status IN (?, ?)`

	insertBookingQuery = `INSERT INTO test_drive_booking (id, car_id, user_id, booking_date, start_time, end_time, status, notes, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`
)

func (s *SQL) GetLatestActive(ctx context.Context, userID uint64, carID string) (*model.TestDriveBookingEntity, error) {
	var entity model.TestDriveBookingEntity
	err := s.conn.QueryRowxContext(ctx, getLatestActiveQuery, userID, carID,
		constant.TestDriveStatusPending, constant.TestDriveStatusConfirmed, constant.TestDriveStatusCompleted).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) HasOpenBooking(ctx context.Context, userID uint64, carID string) (bool, error) {
	var count int64
	err := s.conn.GetContext(ctx, &count, countOpenBookingsQuery, userID, carID,
		constant.TestDriveStatusPending, constant.TestDriveStatusConfirmed)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQL) Create(ctx context.Context, b *model.TestDriveBookingEntity) error {
	_, err := s.conn.ExecContext(ctx, insertBookingQuery,
		b.ID, b.CarID, b.UserID, b.BookingDate, b.StartTime, b.EndTime, b.Status, b.Notes)
	return err
}
