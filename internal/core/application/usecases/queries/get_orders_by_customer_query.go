package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
)

// GetOrdersByCustomerQuery retrieves every order placed by one customer.
// The customer identifier is opaque: any non-empty string is accepted and
// matched verbatim against storage.
type GetOrdersByCustomerQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query for the given customer.
func NewGetOrdersByCustomerQuery(customerID string) (GetOrdersByCustomerQuery, error) {
	if customerID == "" {
		return GetOrdersByCustomerQuery{}, errs.NewValueIsRequiredError("customerId")
	}

	return GetOrdersByCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer identifier to match.
func (q GetOrdersByCustomerQuery) CustomerID() string {
	return q.customerID
}
