package model

import "time"

// DealershipEntity represents the dealership_info table entity
type DealershipEntity struct {
	ID           uint64              `db:"id" json:"id"`
	Name         string              `db:"name" json:"name"`
	Address      string              `db:"address" json:"address"`
	Phone        string              `db:"phone" json:"phone"`
	Email        string              `db:"email" json:"email"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time          `db:"updated_at" json:"updated_at,omitempty"`
	WorkingHours []WorkingHourEntity `db:"-" json:"working_hours"`
}

// WorkingHourEntity represents the working_hour table entity
type WorkingHourEntity struct {
	ID           uint64     `db:"id" json:"id"`
	DealershipID uint64     `db:"dealership_id" json:"dealership_id"`
	DayOfWeek    string     `db:"day_of_week" json:"day_of_week"`
	OpenTime     string     `db:"open_time" json:"open_time"`
	CloseTime    string     `db:"close_time" json:"close_time"`
	IsOpen       bool       `db:"is_open" json:"is_open"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// SerializedDealership is the transport-safe dealership shape with
// timestamps rendered as RFC 3339 text.
type SerializedDealership struct {
	ID           uint64                  `json:"id"`
	Name         string                  `json:"name"`
	Address      string                  `json:"address"`
	Phone        string                  `json:"phone"`
	Email        string                  `json:"email"`
	CreatedAt    string                  `json:"createdAt,omitempty"`
	UpdatedAt    string                  `json:"updatedAt,omitempty"`
	WorkingHours []SerializedWorkingHour `json:"workingHours"`
}

type SerializedWorkingHour struct {
	ID        uint64 `json:"id"`
	DayOfWeek string `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsOpen    bool   `json:"isOpen"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// SerializeDealership normalizes a dealership and its working hours.
func SerializeDealership(d *DealershipEntity) *SerializedDealership {
	if d == nil {
		return nil
	}
	s := &SerializedDealership{
		ID:           d.ID,
		Name:         d.Name,
		Address:      d.Address,
		Phone:        d.Phone,
		Email:        d.Email,
		WorkingHours: make([]SerializedWorkingHour, 0, len(d.WorkingHours)),
	}
	if !d.CreatedAt.IsZero() {
		s.CreatedAt = d.CreatedAt.Format(time.RFC3339)
	}
	if d.UpdatedAt != nil && !d.UpdatedAt.IsZero() {
		s.UpdatedAt = d.UpdatedAt.Format(time.RFC3339)
	}
	for _, h := range d.WorkingHours {
		sh := SerializedWorkingHour{
			ID:        h.ID,
			DayOfWeek: h.DayOfWeek,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
			IsOpen:    h.IsOpen,
		}
		if !h.CreatedAt.IsZero() {
			sh.CreatedAt = h.CreatedAt.Format(time.RFC3339)
		}
		if h.UpdatedAt != nil && !h.UpdatedAt.IsZero() {
			sh.UpdatedAt = h.UpdatedAt.Format(time.RFC3339)
		}
		s.WorkingHours = append(s.WorkingHours, sh)
	}
	return s
}
