package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePosition_ErrorCodesMapToDistinctMessages(t *testing.T) {
	codes := []GeolocationErrorCode{
		GeolocationPermissionDenied,
		GeolocationPositionUnavailable,
		GeolocationTimeout,
	}

	seen := make(map[string]GeolocationErrorCode)
	for _, code := range codes {
		result := ResolvePosition(PositionReport{
			ErrorCode:   &code,
			Coordinates: &Coordinates{Latitude: -8.83, Longitude: 13.23},
		})

		assert.Nil(t, result.Coordinates, "coordinates must stay unset for code %d", code)
		assert.False(t, result.Updated)
		assert.NotEmpty(t, result.ErrorMessage)

		if prev, dup := seen[result.ErrorMessage]; dup {
			t.Fatalf("codes %d and %d share message %q", prev, code, result.ErrorMessage)
		}
		seen[result.ErrorMessage] = code
	}
}

func TestResolvePosition_PermissionDeniedMessage(t *testing.T) {
	code := GeolocationPermissionDenied
	result := ResolvePosition(PositionReport{ErrorCode: &code})

	assert.Equal(t, "Location permission denied. Enable location access to share your position.", result.ErrorMessage)
}

func TestResolvePosition_Coordinates(t *testing.T) {
	coords := &Coordinates{Latitude: -8.83, Longitude: 13.23}
	result := ResolvePosition(PositionReport{Coordinates: coords})

	assert.True(t, result.Updated)
	assert.Equal(t, coords, result.Coordinates)
	assert.Empty(t, result.ErrorMessage)
}

func TestGeolocationErrorCode_Unsupported(t *testing.T) {
	assert.True(t, GeolocationUnsupported.IsValid())
	assert.Equal(t, "Geolocation is not supported by this device.", GeolocationUnsupported.Message())
	assert.False(t, GeolocationErrorCode(9).IsValid())
}
