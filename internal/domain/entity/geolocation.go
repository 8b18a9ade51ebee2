package entity

import "time"

// GeolocationErrorCode mirrors the error codes reported by device geolocation APIs.
type GeolocationErrorCode int

const (
	// GeolocationUnsupported means the device offers no geolocation API.
	GeolocationUnsupported GeolocationErrorCode = 0
	// GeolocationPermissionDenied means the user refused location access.
	GeolocationPermissionDenied GeolocationErrorCode = 1
	// GeolocationPositionUnavailable means no position could be determined.
	GeolocationPositionUnavailable GeolocationErrorCode = 2
	// GeolocationTimeout means the position lookup took too long.
	GeolocationTimeout GeolocationErrorCode = 3
)

var geolocationMessages = map[GeolocationErrorCode]string{
	GeolocationUnsupported:         "Geolocation is not supported by this device.",
	GeolocationPermissionDenied:    "Location permission denied. Enable location access to share your position.",
	GeolocationPositionUnavailable: "Your location is currently unavailable. Check your GPS signal and try again.",
	GeolocationTimeout:             "Timed out while getting your location. Please try again.",
}

// IsValid checks if the code is a known value.
func (c GeolocationErrorCode) IsValid() bool {
	_, ok := geolocationMessages[c]

	return ok
}

// Message returns the user-facing message for the code.
func (c GeolocationErrorCode) Message() string {
	if msg, ok := geolocationMessages[c]; ok {
		return msg
	}

	return geolocationMessages[GeolocationPositionUnavailable]
}

// PositionReport is what a device sends while tracking a delivery: either coordinates or an error code.
type PositionReport struct {
	Coordinates *Coordinates          `json:"coordinates,omitempty"`
	ErrorCode   *GeolocationErrorCode `json:"error_code,omitempty"`
	ReportedAt  time.Time             `json:"reported_at"`
}

// PositionResult is the outcome of applying a position report.
type PositionResult struct {
	Coordinates  *Coordinates `json:"coordinates"`
	ErrorMessage string       `json:"error_message,omitempty"`
	Updated      bool         `json:"updated"`
}

// ResolvePosition maps a report to coordinates or a fixed error message. Error reports never carry coordinates.
func ResolvePosition(report PositionReport) PositionResult {
	if report.ErrorCode != nil {
		return PositionResult{ErrorMessage: report.ErrorCode.Message()}
	}

	if report.Coordinates == nil {
		return PositionResult{ErrorMessage: GeolocationPositionUnavailable.Message()}
	}

	return PositionResult{Coordinates: report.Coordinates, Updated: true}
}
