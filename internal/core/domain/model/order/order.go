package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order domain: the order entity together
// with its owned items, treated as a single consistency boundary.
//
// Order maintains these invariants:
//   - The total amount always equals the sum of item subtotals
//   - Status moves only along the transitions defined by Status
//   - Items may be replaced wholesale only while the order is Pending
//   - The order id and order number are assigned once, at creation
//
// The customer reference is an opaque string: its format is never validated,
// only its existence (checked by the creation use case through the customer
// validation gateway before the aggregate is built).
//
// All fields are private; every mutation goes through a method that keeps
// the invariants and refreshes the updated-at timestamp.
type Order struct {
	// id is the immutable business identifier, distinct from any storage key
	id kernel.UUID

	// customerID references the customer record in the external customer service
	customerID string

	// number is the immutable human-readable identifier
	number kernel.OrderNumber

	// status is the current state in the order lifecycle
	status Status

	// items holds the product lines in insertion order
	items []Item

	// totalAmount is the sum of item subtotals, recomputed on every item change
	totalAmount kernel.Money

	// notes is an optional free-text annotation, mutable while Pending
	notes string

	// placedAt is the immutable creation timestamp
	placedAt time.Time

	// updatedAt is refreshed on every mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new pending order for a customer. The order id, order
// number, and timestamps are assigned here; the total amount is computed
// from the items.
//
// The item list must be non-empty and every item must carry a positive
// quantity and unit price. Items normally arrive pre-validated through
// NewItem, but the checks are repeated here so a malformed item can never
// produce an order that violates the monetary invariant.
func NewOrder(customerID string, items []Item, notes string) (*Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}

	now := time.Now().UTC()
	order := &Order{
		id:            kernel.NewUUID(),
		customerID:    customerID,
		number:        kernel.GenerateOrderNumber(now),
		status:        Pending,
		items:         make([]Item, 0, len(items)),
		totalAmount:   kernel.ZeroMoney(),
		notes:         notes,
		placedAt:      now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := order.setItems(items); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rehydrates an order from persistence without regenerating
// identity or timestamps. The total amount is recomputed from the items so
// the monetary invariant holds even if the stored total drifted.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	number kernel.OrderNumber,
	status Status,
	items []Item,
	notes string,
	placedAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order := &Order{
		id:            id,
		customerID:    customerID,
		number:        number,
		status:        status,
		items:         make([]Item, 0, len(items)),
		totalAmount:   kernel.ZeroMoney(),
		notes:         notes,
		placedAt:      placedAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := order.setItems(items); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was constructed through NewOrder or
// RestoreOrder, preventing use of directly instantiated structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their business identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's business identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the opaque customer reference.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Number returns the human-readable order number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the product lines in insertion order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the sum of item subtotals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Notes returns the free-text annotation.
func (o *Order) Notes() string {
	return o.notes
}

// PlacedAt returns the creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AddItem appends a product line and recomputes the total amount.
// The change is in-memory only; persistence is the caller's concern.
func (o *Order) AddItem(item Item) error {
	if err := validateItem(item); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.totalAmount = o.CalculateTotal()
	o.touch()
	return nil
}

// ReplaceItems swaps the full item list and recomputes the total amount.
// Allowed only while the order is Pending.
func (o *Order) ReplaceItems(items []Item) error {
	if o.status != Pending {
		return NewIllegalOrderStateError(o.status)
	}

	o.items = o.items[:0]
	if err := o.setItems(items); err != nil {
		return err
	}

	o.touch()
	return nil
}

// UpdateNotes changes the free-text annotation.
// Allowed only while the order is Pending.
func (o *Order) UpdateNotes(notes string) error {
	if o.status != Pending {
		return NewIllegalOrderStateError(o.status)
	}

	o.notes = notes
	o.touch()
	return nil
}

// CalculateTotal returns the sum of item subtotals, zero for an empty list.
// Pure; it does not modify the order.
func (o *Order) CalculateTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// CanBeCancelled reports whether the order may still be cancelled:
// only while Pending or Confirmed, before fulfilment starts.
func (o *Order) CanBeCancelled() bool {
	return o.status.AllowsCancellation()
}

// Cancel transitions the order to Cancelled.
// Returns an OrderCannotBeCancelledError when the order is already in
// flight or in a terminal status.
func (o *Order) Cancel() error {
	if !o.CanBeCancelled() {
		return NewOrderCannotBeCancelledError(o.status)
	}

	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ChangeStatus moves the order along the status state machine.
// On an illegal move it returns an InvalidStatusTransitionError carrying
// the current and the requested status; the order is left unmodified.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// setItems validates and appends the given items, then recomputes the total.
// Used by the constructors and ReplaceItems.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return NewInvalidItemsError("order must contain at least one item")
	}

	for _, item := range items {
		if err := validateItem(item); err != nil {
			return err
		}
	}

	o.items = append(o.items, items...)
	o.totalAmount = o.CalculateTotal()
	return nil
}

// touch refreshes the updated-at timestamp after a mutation.
func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

// validateItem guards the aggregate against items that bypassed NewItem.
func validateItem(item Item) error {
	if err := item.Validate(); err != nil {
		return NewInvalidItemsError(err.Error())
	}
	if item.Quantity() <= 0 {
		return NewInvalidItemsError("item quantity is not greater than 0")
	}
	if !item.UnitPrice().IsPositive() {
		return NewInvalidItemsError("item unit price is not greater than 0")
	}
	return nil
}
