package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(100)"`
	Active      bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// SpecialtyModel mirrors the 'specialties' table.
type SpecialtyModel struct {
	TechnicianID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (SpecialtyModel) TableName() string {
	return "specialties"
}

// ServiceOfferingModel mirrors the 'service_offerings' table.
type ServiceOfferingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TechnicianID uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(150);not null"`
	Description  string    `gorm:"type:text"`
	BasePrice    int64     `gorm:"not null;default:0"`
	Active       bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceOfferingModel) TableName() string {
	return "service_offerings"
}
