package services

import "errors"

// Authorization errors surfaced at the RPC boundary. Each maps to a distinct
// failure kind for direct user-facing display.
var (
	ErrUnauthenticated  = errors.New("caller is not authenticated")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("ride not found")
	ErrPermissionDenied = errors.New("caller is neither the ride's customer nor driver")
)
