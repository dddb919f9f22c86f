package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList maps a JSON array column to a []string.
type StringList []string

func (s *StringList) Scan(src interface{}) error {
	if src == nil {
		*s = StringList{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
	if len(raw) == 0 {
		*s = StringList{}
		return nil
	}
	return json.Unmarshal(raw, s)
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// CarEntity represents the car table entity
type CarEntity struct {
	ID           string     `db:"id" json:"id"`
	Make         string     `db:"make" json:"make"`
	Model        string     `db:"model" json:"model"`
	Year         int        `db:"year" json:"year"`
	Price        float64    `db:"price" json:"price"`
	Mileage      int64      `db:"mileage" json:"mileage"`
	Color        string     `db:"color" json:"color"`
	FuelType     string     `db:"fuel_type" json:"fuel_type"`
	Transmission string     `db:"transmission" json:"transmission"`
	BodyType     string     `db:"body_type" json:"body_type"`
	Description  string     `db:"description" json:"description"`
	Status       string     `db:"status" json:"status"`
	Featured     bool       `db:"featured" json:"featured"`
	Images       StringList `db:"images" json:"images"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CarQuery is the repository-level match predicate for car listings.
// Empty string fields mean "no constraint". MaxPrice is applied only
// when positive and strictly below constant.PriceUnbounded.
type CarQuery struct {
	Search       string
	Make         string
	BodyType     string
	FuelType     string
	Transmission string
	MinPrice     float64
	MaxPrice     float64
	SortBy       string
}

// CarFilterRequest is the parsed listing request with defaults already
// applied by the transport layer.
type CarFilterRequest struct {
	Search       string  `json:"search"`
	Make         string  `json:"make"`
	BodyType     string  `json:"body_type"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	SortBy       string  `json:"sort_by"`
	Page         int     `json:"page"`
	Limit        int     `json:"limit"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type CarListResponse struct {
	Data       []SerializedCar `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PriceAggregate is the raw MIN/MAX projection; both are NULL when no
// row matches.
type PriceAggregate struct {
	Min *float64 `db:"min_price"`
	Max *float64 `db:"max_price"`
}

// CarFiltersData populates the filter UI controls.
type CarFiltersData struct {
	Makes         []string   `json:"makes"`
	BodyTypes     []string   `json:"bodyTypes"`
	FuelTypes     []string   `json:"fuelTypes"`
	Transmissions []string   `json:"transmissions"`
	PriceRange    PriceRange `json:"priceRange"`
}

// UserTestDrive is the caller's most recent active booking for a car,
// reduced for the detail page.
type UserTestDrive struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	BookingDate string `json:"bookingDate"`
}

type TestDriveInfo struct {
	UserTestDrive *UserTestDrive        `json:"userTestDrive"`
	Dealership    *SerializedDealership `json:"dealership"`
}

type CarDetail struct {
	SerializedCar
	TestDriveInfo TestDriveInfo `json:"testDriveInfo"`
}
