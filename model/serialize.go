package model

import "time"

// SerializedCar is the transport-safe shape of a car: price coerced to a
// plain number, timestamps rendered as RFC 3339 text, plus the caller's
// wishlist flag.
type SerializedCar struct {
	ID           string   `json:"id"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        float64  `json:"price"`
	Mileage      int64    `json:"mileage"`
	Color        string   `json:"color"`
	FuelType     string   `json:"fuelType"`
	Transmission string   `json:"transmission"`
	BodyType     string   `json:"bodyType"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	Featured     bool     `json:"featured"`
	Images       []string `json:"images"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
	Wishlisted   bool     `json:"wishlisted"`
}

// SerializeCar normalizes a stored car for transport. Store order must be
// preserved by callers; this never re-sorts.
func SerializeCar(car *CarEntity, wishlisted bool) SerializedCar {
	s := SerializedCar{
		ID:           car.ID,
		Make:         car.Make,
		Model:        car.Model,
		Year:         car.Year,
		Price:        car.Price,
		Mileage:      car.Mileage,
		Color:        car.Color,
		FuelType:     car.FuelType,
		Transmission: car.Transmission,
		BodyType:     car.BodyType,
		Description:  car.Description,
		Status:       car.Status,
		Featured:     car.Featured,
		Images:       car.Images,
		Wishlisted:   wishlisted,
	}
	if !car.CreatedAt.IsZero() {
		s.CreatedAt = car.CreatedAt.Format(time.RFC3339)
	}
	if car.UpdatedAt != nil && !car.UpdatedAt.IsZero() {
		s.UpdatedAt = car.UpdatedAt.Format(time.RFC3339)
	}
	if s.Images == nil {
		s.Images = []string{}
	}
	return s
}
