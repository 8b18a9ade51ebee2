package qrcode

import (
	"encoding/json"
	"testing"

	"servihub/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Zero size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNew_WithoutQRCodeConfig(t *testing.T) {
	service := New(&config.Config{})

	qrBytes, err := service.GeneratePickupQR(uuid.New(), "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePickupQR(uuid.New(), "482913")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GeneratePickupQR_EmptyCode(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GeneratePickupQR(uuid.New(), "")
	assert.Error(t, err)
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	deliveryID := uuid.New()

	valid, err := json.Marshal(PickupData{DeliveryID: deliveryID.String(), Code: "482913", Type: pickupQRType})
	require.NoError(t, err)

	gotID, gotCode, err := service.ParsePickupQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, deliveryID, gotID)
	assert.Equal(t, "482913", gotCode)
}

func TestQRCodeService_ParsePickupQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		data PickupData
		raw  string
	}{
		{name: "wrong type", data: PickupData{DeliveryID: uuid.NewString(), Code: "1", Type: "subscription"}},
		{name: "bad delivery id", data: PickupData{DeliveryID: "nope", Code: "1", Type: pickupQRType}},
		{name: "missing code", data: PickupData{DeliveryID: uuid.NewString(), Type: pickupQRType}},
		{name: "not json", raw: "{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.raw
			if raw == "" {
				encoded, err := json.Marshal(tt.data)
				require.NoError(t, err)
				raw = string(encoded)
			}

			_, _, err := service.ParsePickupQR(raw)
			assert.Error(t, err)
		})
	}
}
