package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves a page of orders currently in one
// lifecycle status. Pagination is zero-based, like GetAllOrdersQuery.
type GetOrdersByStatusQuery struct {
	status order.Status
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a paged query for the given status.
func NewGetOrdersByStatusQuery(status order.Status, page int, size int) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}
	if page < 0 {
		return GetOrdersByStatusQuery{}, errs.NewValueIsOutOfRangeError("page", page, 0, int(^uint(0)>>1))
	}
	if size < 1 || size > maxPageSize {
		return GetOrdersByStatusQuery{}, errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}

	return GetOrdersByStatusQuery{
		status: status,
		page:   page,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to match.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// Page returns the zero-based page index.
func (q GetOrdersByStatusQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetOrdersByStatusQuery) Size() int {
	return q.size
}
