package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order domain. Use errors.Is against these to
// classify a failure; the typed errors below carry the details.
var (
	ErrInvalidStatusTransition = errors.New("order status transition is not allowed")
	ErrOrderCannotBeCancelled  = errors.New("order cannot be cancelled")
	ErrIllegalOrderState       = errors.New("order state does not allow this operation")
	ErrInvalidItems            = errors.New("order items are invalid")
)

// InvalidStatusTransitionError reports a status change that is not in the
// transition table, carrying both sides of the rejected move.
type InvalidStatusTransitionError struct {
	From Status
	To   Status
}

// NewInvalidStatusTransitionError creates an InvalidStatusTransitionError
// for the rejected move from -> to.
func NewInvalidStatusTransitionError(from, to Status) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, To: to}
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot change order status from %s to %s",
		ErrInvalidStatusTransition, e.From, e.To)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// OrderCannotBeCancelledError reports a cancellation attempt on an order
// that is already in flight or in a terminal status.
type OrderCannotBeCancelledError struct {
	Status Status
}

// NewOrderCannotBeCancelledError creates an OrderCannotBeCancelledError
// for an order currently in the given status.
func NewOrderCannotBeCancelledError(status Status) *OrderCannotBeCancelledError {
	return &OrderCannotBeCancelledError{Status: status}
}

func (e *OrderCannotBeCancelledError) Error() string {
	return fmt.Sprintf("%s: order is in status %s", ErrOrderCannotBeCancelled, e.Status)
}

func (e *OrderCannotBeCancelledError) Unwrap() error {
	return ErrOrderCannotBeCancelled
}

// IllegalOrderStateError reports a mutation (item or note update) attempted
// while the order is no longer pending.
type IllegalOrderStateError struct {
	Status Status
}

// NewIllegalOrderStateError creates an IllegalOrderStateError for an order
// currently in the given status.
func NewIllegalOrderStateError(status Status) *IllegalOrderStateError {
	return &IllegalOrderStateError{Status: status}
}

func (e *IllegalOrderStateError) Error() string {
	return fmt.Sprintf("%s: only PENDING orders can be updated, current status is %s",
		ErrIllegalOrderState, e.Status)
}

func (e *IllegalOrderStateError) Unwrap() error {
	return ErrIllegalOrderState
}

// InvalidItemsError reports a malformed item set: empty list, missing
// product reference, or non-positive quantity or price.
type InvalidItemsError struct {
	Reason string
}

// NewInvalidItemsError creates an InvalidItemsError with a human-readable reason.
func NewInvalidItemsError(reason string) *InvalidItemsError {
	return &InvalidItemsError{Reason: reason}
}

func (e *InvalidItemsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidItems, e.Reason)
}

func (e *InvalidItemsError) Unwrap() error {
	return ErrInvalidItems
}
