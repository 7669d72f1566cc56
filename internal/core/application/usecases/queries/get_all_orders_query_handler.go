package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves a page of orders from the database,
// most recently placed first.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for paged order listings.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the paged listing. An empty page past the end of the data
// is a valid result, not an error.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) (OrdersPageResponse, error) {
	if err := query.Validate(); err != nil {
		return OrdersPageResponse{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders`).Scan(&total).Error
	if err != nil {
		return OrdersPageResponse{}, err
	}

	orders, err := fetchOrders(ctx, h.db, `
		SELECT `+orderSelectColumns+`
		FROM orders
		ORDER BY placed_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, query.Size(), query.Page()*query.Size())
	if err != nil {
		return OrdersPageResponse{}, err
	}

	return OrdersPageResponse{
		Orders: orders,
		Page:   query.Page(),
		Size:   query.Size(),
		Total:  total,
	}, nil
}
