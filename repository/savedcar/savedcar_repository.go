package savedcar

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/mazhilunthu/car-marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SavedCarRepository interface {
	Get(ctx context.Context, userID uint64, carID string) (*model.SavedCarEntity, error)
	Create(ctx context.Context, userID uint64, carID string) error
	Delete(ctx context.Context, userID uint64, carID string) error
	ListCarIDs(ctx context.Context, userID uint64) ([]string, error)
	ListCars(ctx context.Context, userID uint64) ([]model.CarEntity, error)
}

func NewSavedCarRepository(conn *sqlx.DB) SavedCarRepository {
	return &SQL{conn: conn}
}

const (
	getSavedCarQuery    = `SELECT user_id, car_id, saved_at FROM user_saved_car WHERE user_id = ? AND car_id = ?`
	insertSavedCarQuery = `INSERT INTO user_saved_car (user_id, car_id, saved_at) VALUES (?, ?, NOW())`
	deleteSavedCarQuery = `DELETE FROM user_saved_car WHERE user_id = ? AND car_id = ?`
	listCarIDsQuery     = `SELECT car_id FROM user_saved_car WHERE user_id = ?`

	// Most recently saved first.
	listSavedCarsQuery = `SELECT c.id, c.make, c.model, c.year, c.price, c.mileage, c.color, c.fuel_type, c.transmission, c.body_type, c.description, c.status, c.featured, c.images, c.created_at, c.updated_at
FROM user_saved_car usc
JOIN car c ON c.id = usc.car_id
WHERE usc.user_id = ?
ORDER BY usc.saved_at DESC`
)

func (s *SQL) Get(ctx context.Context, userID uint64, carID string) (*model.SavedCarEntity, error) {
	var entity model.SavedCarEntity
	if err := s.conn.QueryRowxContext(ctx, getSavedCarQuery, userID, carID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, userID uint64, carID string) error {
	_, err := s.conn.ExecContext(ctx, insertSavedCarQuery, userID, carID)
	return err
}

func (s *SQL) Delete(ctx context.Context, userID uint64, carID string) error {
	_, err := s.conn.ExecContext(ctx, deleteSavedCarQuery, userID, carID)
	return err
}

func (s *SQL) ListCarIDs(ctx context.Context, userID uint64) ([]string, error) {
	ids := make([]string, 0)
	if err := s.conn.SelectContext(ctx, &ids, listCarIDsQuery, userID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *SQL) ListCars(ctx context.Context, userID uint64) ([]model.CarEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listSavedCarsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := make([]model.CarEntity, 0)
	for rows.Next() {
		var c model.CarEntity
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}
