package services

import "errors"

// Sentinel errors making up the API error taxonomy. Handlers map these onto
// HTTP status codes; anything else is logged and surfaced as an opaque 500.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("you don't have permission to access this resource")
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrConflict        = errors.New("conflict with existing resource")
	ErrUnavailable     = errors.New("service is not available for purchase")
	ErrAlreadyOwned    = errors.New("you have already purchased this service")
	ErrAlreadyReviewed = errors.New("you have already reviewed this service")
	ErrSelfPurchase    = errors.New("you cannot purchase your own service")
)
