package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. Deleted products stay referenced by order items.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VendorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"not null"`
	Stock       int       `gorm:"not null;default:0"`
	ImageKey    string    `gorm:"type:varchar(255)"`
	Active      bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClientID        uuid.UUID `gorm:"type:uuid;not null;index"`
	VendorID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	Total           int64     `gorm:"not null"`
	DeliveryAddress string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// DeliveryModel mirrors the 'deliveries' table. One delivery per order.
type DeliveryModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID           uuid.UUID  `gorm:"type:uuid;unique;not null"`
	VendorID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeliveryPersonID  *uuid.UUID `gorm:"type:uuid;index"`
	Status            string     `gorm:"type:varchar(20);not null;index"`
	PickupLat         float64    `gorm:"not null"`
	PickupLng         float64    `gorm:"not null"`
	DropoffLat        float64    `gorm:"not null"`
	DropoffLng        float64    `gorm:"not null"`
	CurrentLat        *float64
	CurrentLng        *float64
	DistanceKm        float64 `gorm:"not null;default:0"`
	PickupCode        string  `gorm:"type:varchar(6);not null"`
	AcceptedAt        *time.Time
	PickedUpAt        *time.Time
	InTransitAt       *time.Time
	DeliveredAt       *time.Time
	PositionUpdatedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
