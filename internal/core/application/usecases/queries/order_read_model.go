package queries

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderResponse represents the full order view returned by read queries.
// It is built straight from storage rows without rehydrating the aggregate.
type OrderResponse struct {
	OrderID     kernel.UUID
	CustomerID  string
	OrderNumber string
	Status      string
	TotalAmount decimal.Decimal
	Notes       string
	PlacedAt    time.Time
	UpdatedAt   time.Time
	Items       []OrderItemResponse
}

// OrderItemResponse represents a single line within an order view.
type OrderItemResponse struct {
	ProductCode string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

const orderSelectColumns = `
	id,
	order_id,
	customer_id,
	order_number,
	status,
	total_amount,
	notes,
	placed_at,
	updated_at
`

// fetchOrders runs the given order query, scans the result rows, and attaches
// the item lines of every matched order in a single follow-up query.
func fetchOrders(ctx context.Context, db *gorm.DB, sql string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]OrderResponse, 0)
	rowIDs := make([]uint64, 0)
	indexByRowID := make(map[uint64]int)

	for rows.Next() {
		var rowID uint64
		var id uuid.UUID
		var orderResp OrderResponse

		err = rows.Scan(
			&rowID,
			&id,
			&orderResp.CustomerID,
			&orderResp.OrderNumber,
			&orderResp.Status,
			&orderResp.TotalAmount,
			&orderResp.Notes,
			&orderResp.PlacedAt,
			&orderResp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.OrderID = orderID
		orderResp.Items = make([]OrderItemResponse, 0)

		indexByRowID[rowID] = len(responses)
		rowIDs = append(rowIDs, rowID)
		responses = append(responses, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(responses) == 0 {
		return responses, nil
	}

	if err = attachItems(ctx, db, responses, rowIDs, indexByRowID); err != nil {
		return nil, err
	}

	return responses, nil
}

func attachItems(
	ctx context.Context,
	db *gorm.DB,
	responses []OrderResponse,
	rowIDs []uint64,
	indexByRowID map[uint64]int,
) error {
	itemRows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_ref,
			product_code,
			product_name,
			quantity,
			unit_price,
			subtotal
		FROM order_items
		WHERE order_ref IN ?
		ORDER BY order_ref, position
	`, rowIDs).Rows()
	if err != nil {
		return err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderRef uint64
		var itemResp OrderItemResponse

		err = itemRows.Scan(
			&orderRef,
			&itemResp.ProductCode,
			&itemResp.ProductName,
			&itemResp.Quantity,
			&itemResp.UnitPrice,
			&itemResp.Subtotal,
		)
		if err != nil {
			return err
		}

		idx, ok := indexByRowID[orderRef]
		if !ok {
			continue
		}
		responses[idx].Items = append(responses[idx].Items, itemResp)
	}

	return itemRows.Err()
}
