package ports

import (
	"context"
	"errors"
)

// Gateway error sentinels. A not-found verdict must only ever come from an
// authoritative response of the customer service; unavailability is always
// surfaced as its own kind and never silently treated as absence.
var (
	// ErrCustomerNotFound means the customer service authoritatively reported
	// that the customer does not exist or is inactive.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCustomerServiceUnavailable means the customer service could not be
	// reached after retries, or the circuit breaker is open.
	ErrCustomerServiceUnavailable = errors.New("customer service is unavailable")
)

// CustomerValidationGateway answers whether a customer exists and is active,
// across the network boundary to the customer service.
//
// Implementations wrap the underlying read call with retry and circuit
// breaker policy; the call is a pure read, so retries are safe.
type CustomerValidationGateway interface {
	// CustomerExists reports whether the customer with the given business id
	// exists and is currently active. The error, when non-nil, wraps either
	// ErrCustomerNotFound or ErrCustomerServiceUnavailable.
	CustomerExists(ctx context.Context, customerID string) (bool, error)
}
