package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of a product order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderReady, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order aggregates the items a client bought from one vendor.
type Order struct {
	ID              uuid.UUID    `json:"id"`
	ClientID        uuid.UUID    `json:"client_id"`
	VendorID        uuid.UUID    `json:"vendor_id"`
	Status          OrderStatus  `json:"status"`
	Total           int64        `json:"total"`
	DeliveryAddress string       `json:"delivery_address"`
	Items           []*OrderItem `json:"items"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// OrderItem is one product line of an order, priced at order time.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
}

// Subtotal returns quantity times unit price.
func (i *OrderItem) Subtotal() int64 {
	return int64(i.Quantity) * i.UnitPrice
}

// ComputeTotal sums the item subtotals.
func (o *Order) ComputeTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal()
	}

	return total
}

// CanVendorAdvanceTo reports whether the vendor may move the order to next.
// Delivered is reached only through delivery completion.
func (o *Order) CanVendorAdvanceTo(next OrderStatus) bool {
	switch o.Status {
	case OrderPending:
		return next == OrderConfirmed
	case OrderConfirmed:
		return next == OrderReady
	default:
		return false
	}
}

// IsCancellable reports whether the order can still be cancelled.
func (o *Order) IsCancellable() bool {
	return o.Status == OrderPending || o.Status == OrderConfirmed
}
