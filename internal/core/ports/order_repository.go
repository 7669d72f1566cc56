package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are keyed by their business identifier; the storage-internal key
// never leaks through this interface.
//
// List operations use zero-based pagination and return orders most recent
// first by creation timestamp.
type OrderRepository interface {
	// Save persists the aggregate as an idempotent upsert by business id:
	// saving an order whose id already exists updates the stored record in
	// place, reusing its storage-internal identity, never creating a
	// duplicate.
	Save(ctx context.Context, aggregate *order.Order) error

	// GetByOrderID retrieves an order by its business identifier.
	// Returns an errs.ObjectNotFoundError when no such order exists.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*order.Order, error)

	// GetAll retrieves a page of orders.
	GetAll(ctx context.Context, page, size int) ([]*order.Order, error)

	// GetByCustomerID retrieves every order placed by a customer.
	GetByCustomerID(ctx context.Context, customerID string) ([]*order.Order, error)

	// GetByStatus retrieves a page of orders in the given lifecycle status.
	GetByStatus(ctx context.Context, status order.Status, page, size int) ([]*order.Order, error)

	// DeleteByOrderID removes the stored record for an order.
	// Returns an errs.ObjectNotFoundError when no such order exists.
	DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error

	// ExistsByOrderID reports whether an order with the given business id is stored.
	ExistsByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error)

	// Count returns the number of stored orders.
	Count(ctx context.Context) (int64, error)
}
