package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses delivery pickup QR codes.
type QRCodeService interface {
	// GeneratePickupQR encodes the delivery and its pickup code as a PNG.
	GeneratePickupQR(deliveryID uuid.UUID, pickupCode string) ([]byte, error)

	// ParsePickupQR returns the delivery ID and pickup code carried by scanned QR data.
	ParsePickupQR(qrData string) (uuid.UUID, string, error)
}
