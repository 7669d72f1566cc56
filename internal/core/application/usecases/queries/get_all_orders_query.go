package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

const maxPageSize = 100

// GetAllOrdersQuery retrieves a page of orders, most recent first.
// Pagination is zero-based: page 0 holds the newest orders.
//
// Example:
//
//	query, err := NewGetAllOrdersQuery(0, 20)
//	if err != nil {
//	    return err
//	}
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("page holds %d of %d orders\n", len(page.Orders), page.Total)
type GetAllOrdersQuery struct {
	page int
	size int

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a paged listing query.
// The page index must be non-negative and the size must stay within 1..100.
func NewGetAllOrdersQuery(page int, size int) (GetAllOrdersQuery, error) {
	if page < 0 {
		return GetAllOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 0, int(^uint(0)>>1))
	}
	if size < 1 || size > maxPageSize {
		return GetAllOrdersQuery{}, errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}

	return GetAllOrdersQuery{
		page:  page,
		size:  size,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Page returns the zero-based page index.
func (q GetAllOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetAllOrdersQuery) Size() int {
	return q.size
}

// OrdersPageResponse represents one page of the order listing together with
// the total number of orders in storage.
type OrdersPageResponse struct {
	Orders []OrderResponse
	Page   int
	Size   int
	Total  int64
}
