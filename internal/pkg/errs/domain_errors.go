package errs

import "errors"

// Sentinels shared across layers. Usecases mark lower-level errors with these.
var (
	// Authentication
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")

	// Orders
	ErrOrderNotFound        = errors.New("order not found")
	ErrFulfillmentExists    = errors.New("fulfillment already exists")
	ErrNothingToFulfill     = errors.New("no fulfillable items")
	ErrFulfillmentInFlight  = errors.New("fulfillment retry already in progress")
	ErrMalformedEvent       = errors.New("malformed event payload")
	ErrChallengeFailed      = errors.New("challenge verification failed")
	ErrUpstreamUnavailable  = errors.New("upstream provider unavailable")
	ErrInvalidStatusPayload = errors.New("invalid status transition")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
