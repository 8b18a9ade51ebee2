package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item a vendor sells.
type Product struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	ImageKey    string    `json:"image_key,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"` // Signed download URL, filled on read.
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
