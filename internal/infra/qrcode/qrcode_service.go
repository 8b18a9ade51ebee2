package qrcode

import (
	"encoding/json"

	"servihub/config"
	"servihub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	pickupQRType = "delivery_pickup"
	defaultSize  = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PickupData is the payload encoded in a delivery pickup QR code.
type PickupData struct {
	DeliveryID string `json:"delivery_id"`
	Code       string `json:"code"`
	Type       string `json:"type"`
}

// New creates the QR code service from config, falling back to 256px medium correction.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR encodes the delivery and its pickup code as a PNG.
func (s *qrcodeService) GeneratePickupQR(deliveryID uuid.UUID, pickupCode string) ([]byte, error) {
	if pickupCode == "" {
		return nil, errors.New("pickup code is empty")
	}

	jsonData, err := json.Marshal(PickupData{
		DeliveryID: deliveryID.String(),
		Code:       pickupCode,
		Type:       pickupQRType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupQR returns the delivery ID and pickup code carried by scanned QR data.
func (s *qrcodeService) ParsePickupQR(qrData string) (uuid.UUID, string, error) {
	var data PickupData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != pickupQRType {
		return uuid.Nil, "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	deliveryID, err := uuid.Parse(data.DeliveryID)
	if err != nil {
		return uuid.Nil, "", errors.Wrap(err, "failed to parse delivery ID")
	}

	if data.Code == "" {
		return uuid.Nil, "", errors.New("pickup code is missing")
	}

	return deliveryID, data.Code, nil
}
