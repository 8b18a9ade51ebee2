package errors

import (
	"net/http"

	"servihub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same business code, so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

func newError(httpCode int, code, message string) *BaseError {
	return NewBaseError(httpCode, code, message, "")
}

// Predefined error types
var (
	// Profile and authentication errors
	ErrProfileNotFound     = newError(http.StatusNotFound, "PROFILE_NOT_FOUND", "Profile not found")
	ErrEmailAlreadyExists  = newError(http.StatusConflict, "EMAIL_ALREADY_EXISTS", "This e-mail is already registered")
	ErrRoleNotAllowed      = newError(http.StatusForbidden, "ROLE_NOT_ALLOWED", "This role cannot be registered")
	ErrInvalidCredentials  = newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid e-mail or password")
	ErrRefreshTokenInvalid = newError(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Invalid or expired refresh token")
	ErrUnauthorized        = newError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrPasswordStrength    = newError(http.StatusBadRequest, "PASSWORD_STRENGTH", "Password is too weak")
	ErrTechnicianNotFound  = newError(http.StatusNotFound, "TECHNICIAN_NOT_FOUND", "Technician not found")
	ErrTechnicianInactive  = newError(http.StatusForbidden, "TECHNICIAN_INACTIVE", "Technician account is inactive")
	ErrInsufficientBalance = newError(http.StatusPaymentRequired, "INSUFFICIENT_BALANCE", "Wallet balance is below the platform minimum")

	// Catalog errors
	ErrCategoryNotFound        = newError(http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
	ErrCategoryInactive        = newError(http.StatusUnprocessableEntity, "CATEGORY_INACTIVE", "Category is not active")
	ErrCategoryAlreadyExists   = newError(http.StatusConflict, "CATEGORY_ALREADY_EXISTS", "A category with this name already exists")
	ErrServiceOfferingNotFound = newError(http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
	ErrSpecialtyNotFound       = newError(http.StatusNotFound, "SPECIALTY_NOT_FOUND", "Specialty not found")

	// Service request errors
	ErrServiceRequestNotFound  = newError(http.StatusNotFound, "SERVICE_REQUEST_NOT_FOUND", "Service request not found")
	ErrInvalidStatusTransition = newError(http.StatusConflict, "INVALID_STATUS_TRANSITION", "This status change is not allowed")
	ErrRequestAlreadyTaken     = newError(http.StatusConflict, "REQUEST_ALREADY_TAKEN", "Another technician already accepted this request")
	ErrTechnicianNotArrived    = newError(http.StatusConflict, "TECHNICIAN_NOT_ARRIVED", "The technician has not arrived yet")

	// Product, order and delivery errors
	ErrProductNotFound      = newError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrInsufficientStock    = newError(http.StatusConflict, "INSUFFICIENT_STOCK", "Not enough stock for this product")
	ErrOrderNotFound        = newError(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrOrderNotReady        = newError(http.StatusConflict, "ORDER_NOT_READY", "Order is not ready for delivery")
	ErrDeliveryNotFound     = newError(http.StatusNotFound, "DELIVERY_NOT_FOUND", "Delivery not found")
	ErrDeliveryExists       = newError(http.StatusConflict, "DELIVERY_ALREADY_EXISTS", "This order already has a delivery")
	ErrDeliveryAlreadyTaken = newError(http.StatusConflict, "DELIVERY_ALREADY_TAKEN", "Another delivery person already accepted this delivery")
	ErrInvalidPickupCode    = newError(http.StatusUnprocessableEntity, "INVALID_PICKUP_CODE", "The pickup code does not match")

	// Wallet errors
	ErrInvalidAmount   = newError(http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be greater than zero")
	ErrWalletConflict  = newError(http.StatusConflict, "WALLET_CONFLICT", "The wallet was updated concurrently, please try again")
	ErrPaymentDeclined = newError(http.StatusPaymentRequired, "PAYMENT_DECLINED", "The payment was not approved")
	ErrPaymentFailed   = newError(http.StatusBadGateway, "PAYMENT_FAILED", "The payment provider could not process the payment")

	// Support ticket errors
	ErrSupportTicketNotFound = newError(http.StatusNotFound, "SUPPORT_TICKET_NOT_FOUND", "Support ticket not found")
	ErrTicketClosed          = newError(http.StatusConflict, "TICKET_CLOSED", "This ticket is already resolved")

	// Device errors
	ErrDeviceNotFound = newError(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found")

	// Upload errors
	ErrFileTooLarge = newError(http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "The uploaded file is too large")
	ErrUploadFailed = newError(http.StatusBadGateway, "UPLOAD_FAILED", "The file could not be stored")

	// Validation-related errors
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")

	// Transaction-related errors
	ErrTransactionFailed = newError(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed")

	// General errors
	ErrInternalError = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	ErrForbidden     = newError(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrNotFound      = newError(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrConflict      = newError(http.StatusConflict, "CONFLICT", "Resource conflict")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
