package model

import (
	"time"

	"github.com/google/uuid"
)

// WalletTransactionModel mirrors the 'wallet_transactions' table. Reference is unique when set.
type WalletTransactionModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TechnicianID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type             string     `gorm:"type:varchar(30);not null"`
	Amount           int64      `gorm:"not null"`
	BalanceAfter     int64      `gorm:"not null"`
	Status           string     `gorm:"type:varchar(20);not null"`
	Reference        *string    `gorm:"type:varchar(100);uniqueIndex"`
	ServiceRequestID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletTransactionModel) TableName() string {
	return "wallet_transactions"
}
