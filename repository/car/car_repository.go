package car

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mazhilunthu/car-marketplace/constant"
	"github.com/mazhilunthu/car-marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CarRepository interface {
	List(ctx context.Context, query *model.CarQuery, limit, offset int) ([]model.CarEntity, error)
	Count(ctx context.Context, query *model.CarQuery) (int64, error)
	GetByID(ctx context.Context, id string) (*model.CarEntity, error)
	DistinctMakes(ctx context.Context) ([]string, error)
	DistinctBodyTypes(ctx context.Context) ([]string, error)
	DistinctFuelTypes(ctx context.Context) ([]string, error)
	DistinctTransmissions(ctx context.Context) ([]string, error)
	PriceRange(ctx context.Context) (*model.PriceAggregate, error)
}

func NewCarRepository(conn *sqlx.DB) CarRepository {
	return &SQL{conn: conn}
}

const (
	carColumns = `id, make, model, year, price, mileage, color, fuel_type, transmission, body_type, description, status, featured, images, created_at, updated_at`

	getCarByIDQuery = `SELECT ` + carColumns + ` FROM car WHERE id = ?`

	distinctMakesQuery         = `SELECT DISTINCT make FROM car WHERE status = ? ORDER BY make ASC`
	distinctBodyTypesQuery     = `SELECT DISTINCT body_type FROM car WHERE status = ? ORDER BY body_type ASC`
	distinctFuelTypesQuery     = `SELECT DISTINCT fuel_type FROM car WHERE status = ? ORDER BY fuel_type ASC`
	distinctTransmissionsQuery = `SELECT DISTINCT transmission FROM car WHERE status = ? ORDER BY transmission ASC`

	priceRangeQuery = `SELECT MIN(price) as min_price, MAX(price) as max_price FROM car WHERE status = ?`
)

// buildWhere translates a CarQuery into a WHERE clause. Listings are
// always restricted to in-stock (AVAILABLE) cars; the other predicates
// are ANDed on top.
func buildWhere(q *model.CarQuery) (string, []any) {
	clauses := []string{"status = ?"}
	args := []any{constant.CarStatusAvailable}

	if q.Search != "" {
		clauses = append(clauses, "(LOWER(make) LIKE ? OR LOWER(model) LIKE ? OR LOWER(description) LIKE ?)")
		pattern := "%" + strings.ToLower(q.Search) + "%"
		args = append(args, pattern, pattern, pattern)
	}

	if q.Make != "" {
		clauses = append(clauses, "LOWER(make) = LOWER(?)")
		args = append(args, q.Make)
	}
	if q.BodyType != "" {
		clauses = append(clauses, "LOWER(body_type) = LOWER(?)")
		args = append(args, q.BodyType)
	}
	if q.FuelType != "" {
		clauses = append(clauses, "LOWER(fuel_type) = LOWER(?)")
		args = append(args, q.FuelType)
	}
	if q.Transmission != "" {
		clauses = append(clauses, "LOWER(transmission) = LOWER(?)")
		args = append(args, q.Transmission)
	}

	// Lower bound is always applied; upper bound only when the caller
	// asked for a finite one below the unbounded sentinel.
	clauses = append(clauses, "price >= ?")
	args = append(args, q.MinPrice)
	if q.MaxPrice > 0 && q.MaxPrice < constant.PriceUnbounded {
		clauses = append(clauses, "price <= ?")
		args = append(args, q.MaxPrice)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func orderClause(sortBy string) string {
	switch sortBy {
	case constant.SortByPriceAsc:
		return " ORDER BY price ASC"
	case constant.SortByPriceDesc:
		return " ORDER BY price DESC"
	default:
		return " ORDER BY created_at DESC"
	}
}

func (s *SQL) List(ctx context.Context, query *model.CarQuery, limit, offset int) ([]model.CarEntity, error) {
	where, args := buildWhere(query)
	q := "SELECT " + carColumns + " FROM car" + where + orderClause(query.SortBy) + " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := s.conn.QueryxContext(ctx, q, args...)
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

func (s *SQL) Count(ctx context.Context, query *model.CarQuery) (int64, error) {
	where, args := buildWhere(query)
	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM car"+where, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.CarEntity, error) {
	var entity model.CarEntity
	if err := s.conn.QueryRowxContext(ctx, getCarByIDQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) DistinctMakes(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, distinctMakesQuery)
}

func (s *SQL) DistinctBodyTypes(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, distinctBodyTypesQuery)
}

func (s *SQL) DistinctFuelTypes(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, distinctFuelTypesQuery)
}

func (s *SQL) DistinctTransmissions(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, distinctTransmissionsQuery)
}

func (s *SQL) distinct(ctx context.Context, query string) ([]string, error) {
	values := make([]string, 0)
	if err := s.conn.SelectContext(ctx, &values, query, constant.CarStatusAvailable); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *SQL) PriceRange(ctx context.Context) (*model.PriceAggregate, error) {
	var agg model.PriceAggregate
	if err := s.conn.GetContext(ctx, &agg, priceRangeQuery, constant.CarStatusAvailable); err != nil {
		return nil, err
	}
	return &agg, nil
}
