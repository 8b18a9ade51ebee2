package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups service offerings, e.g. plumbing or electrical.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Specialty links a technician to a category they work in.
type Specialty struct {
	TechnicianID uuid.UUID `json:"technician_id"`
	CategoryID   uuid.UUID `json:"category_id"`
	CreatedAt    time.Time `json:"created_at"`

	Category *Category `json:"category,omitempty"`
}

// ServiceOffering is a priced service published by a technician.
type ServiceOffering struct {
	ID           uuid.UUID `json:"id"`
	TechnicianID uuid.UUID `json:"technician_id"`
	CategoryID   uuid.UUID `json:"category_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	BasePrice    int64     `json:"base_price"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
