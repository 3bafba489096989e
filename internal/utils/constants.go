package utils

import "time"

// Application Constants
const (
	AppName    = "RideLink"
	AppVersion = "1.0.0"

	DefaultCurrency = "USD"
	DefaultTimeZone = "UTC"

	// Booking progress
	BookingProgressTTL = 24 * time.Hour

	// Outbound HTTP
	DefaultRoutingTimeout = 10 * time.Second
	DefaultEmailTimeout   = 10 * time.Second
)

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes surfaced at the API boundary
const (
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeNotFound         = "NOT_FOUND"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeInternal         = "INTERNAL_ERROR"
)

// Common error messages
const (
	ErrInternalServer   = "An internal server error occurred"
	ErrUnauthorized     = "Authentication required"
	ErrValidationFailed = "Validation failed"
)
