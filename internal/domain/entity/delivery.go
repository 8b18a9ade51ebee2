package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the lifecycle state of a delivery.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryAccepted  DeliveryStatus = "accepted"
	DeliveryPickedUp  DeliveryStatus = "picked_up"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
)

var deliveryFlow = map[DeliveryStatus]DeliveryStatus{
	DeliveryPending:   DeliveryAccepted,
	DeliveryAccepted:  DeliveryPickedUp,
	DeliveryPickedUp:  DeliveryInTransit,
	DeliveryInTransit: DeliveryDelivered,
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Delivery carries an order from the vendor to the client.
type Delivery struct {
	ID               uuid.UUID      `json:"id"`
	OrderID          uuid.UUID      `json:"order_id"`
	VendorID         uuid.UUID      `json:"vendor_id"`
	DeliveryPersonID *uuid.UUID     `json:"delivery_person_id"`
	Status           DeliveryStatus `json:"status"`
	Pickup           Coordinates    `json:"pickup"`
	Dropoff          Coordinates    `json:"dropoff"`
	Current          *Coordinates   `json:"current,omitempty"`
	DistanceKm       float64        `json:"distance_km"`
	PickupCode       string         `json:"-"`
	AcceptedAt       *time.Time     `json:"accepted_at,omitempty"`
	PickedUpAt       *time.Time     `json:"picked_up_at,omitempty"`
	InTransitAt      *time.Time     `json:"in_transit_at,omitempty"`
	DeliveredAt      *time.Time     `json:"delivered_at,omitempty"`
	PositionUpdated  *time.Time     `json:"position_updated_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// CanAdvanceTo reports whether the forward transition to next is allowed.
func (d *Delivery) CanAdvanceTo(next DeliveryStatus) bool {
	allowed, ok := deliveryFlow[d.Status]

	return ok && allowed == next
}

// IsAssignedTo reports whether the delivery person carries this delivery.
func (d *Delivery) IsAssignedTo(personID uuid.UUID) bool {
	return d.DeliveryPersonID != nil && *d.DeliveryPersonID == personID
}
