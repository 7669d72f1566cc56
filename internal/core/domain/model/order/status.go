package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the correct fulfilment workflow.
//
// State transitions:
//
//	Pending ────> Confirmed ────> Processing ────> Shipped ────> Delivered
//	   │              │
//	   └──────────────┴─────────> Cancelled
//
// Delivered and Cancelled are terminal: no further transitions are allowed.
// Status is a value object that validates transitions and provides the
// uppercase wire names used by the API and the database.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order creation.
	// Only pending orders accept item or note updates.
	Pending

	// Confirmed indicates the order was accepted and awaits processing.
	Confirmed

	// Processing indicates the order is being prepared for shipment.
	// From here on the order can no longer be cancelled.
	Processing

	// Shipped indicates the order left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before processing. Terminal.
	Cancelled
)

// getStatusStrings returns the wire names for every Status value,
// including Unknown for diagnostics.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Confirmed:  "CONFIRMED",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Confirmed:  "CONFIRMED",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// allowedTransitions is the directed graph of permitted status moves.
// Absent keys (Delivered, Cancelled) are terminal.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {Processing, Cancelled},
		Processing: {Shipped},
		Shipped:    {Delivered},
	}
}

// StatusFromString parses an uppercase wire name ("PENDING", "SHIPPED", ...)
// into a Status. Used by the transport and persistence adapters.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks that the Status is one of the values an order may hold.
// Unknown (0) and out-of-range values are rejected.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the uppercase wire name of the status.
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowsCancellation reports whether an order in this status may still be
// cancelled. Once processing starts the order is in flight and cancellation
// is rejected.
func (s Status) AllowsCancellation() bool {
	return s == Pending || s == Confirmed
}

// CanTransitionTo reports whether the move to next appears in the transition
// table. An Unknown current status accepts any valid first transition; this
// only arises during construction, before the initial status is assigned.
func (s Status) CanTransitionTo(next Status) bool {
	if next.Validate() != nil {
		return false
	}
	if s == Unknown {
		return true
	}
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the move against the transition table and returns
// the new status. On an illegal move it returns an InvalidStatusTransitionError
// carrying both the current and the requested status.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, NewInvalidStatusTransitionError(s, next)
	}
	return next, nil
}
