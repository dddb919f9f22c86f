package dealership

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/mazhilunthu/car-marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type DealershipRepository interface {
	// GetWithWorkingHours returns the dealership record with its working
	// hours, or nil when none is configured.
	GetWithWorkingHours(ctx context.Context) (*model.DealershipEntity, error)
}

func NewDealershipRepository(conn *sqlx.DB) DealershipRepository {
	return &SQL{conn: conn}
}

const (
	getDealershipQuery = `SELECT id, name, address, phone, email, created_at, updated_at FROM dealership_info ORDER BY id ASC LIMIT 1`

	listWorkingHoursQuery = `SELECT id, dealership_id, day_of_week, open_time, close_time, is_open, created_at, updated_at
FROM working_hour WHERE dealership_id = ? ORDER BY id ASC`
)

func (s *SQL) GetWithWorkingHours(ctx context.Context) (*model.DealershipEntity, error) {
	var entity model.DealershipEntity
	if err := s.conn.QueryRowxContext(ctx, getDealershipQuery).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	hours := make([]model.WorkingHourEntity, 0)
	if err := s.conn.SelectContext(ctx, &hours, listWorkingHoursQuery, entity.ID); err != nil {
		return nil, err
	}
	entity.WorkingHours = hours

	return &entity, nil
}
