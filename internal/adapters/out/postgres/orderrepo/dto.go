// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The surrogate primary key stays internal to storage; the business identity
// is the order_id column, kept unique so upserts can never duplicate an order.
type OrderDTO struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	CustomerID  string          `gorm:"index"`
	OrderNumber string          `gorm:"uniqueIndex"`
	Status      string          `gorm:"index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(19,4)"`
	Notes       string
	PlacedAt    time.Time `gorm:"index"`
	UpdatedAt   time.Time
	Items       []OrderItemDTO `gorm:"foreignKey:OrderRef;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single order line in its own table.
// Lines carry a position column so the insertion order of the aggregate's
// items survives the round trip through storage.
type OrderItemDTO struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	OrderRef    uint64    `gorm:"index"`
	ItemID      uuid.UUID `gorm:"type:uuid"`
	ProductCode string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:decimal(19,4)"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(19,4)"`
	Position    int
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// The surrogate key is left zero; Save assigns it on insert or reuses the
// stored one on update.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ItemID:      item.ID().Bytes(),
			ProductCode: item.ProductCode(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			Subtotal:    item.Subtotal().Amount(),
			Position:    position,
		})
	}

	return OrderDTO{
		OrderID:     aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID(),
		OrderNumber: aggregate.Number().String(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount().Amount(),
		Notes:       aggregate.Notes(),
		PlacedAt:    aggregate.PlacedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Items:       items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := toDomainItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.CustomerID, number, status, items, dto.Notes, dto.PlacedAt, dto.UpdatedAt)
}

func toDomainItem(dto OrderItemDTO) (order.Item, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(itemID, dto.ProductCode, dto.ProductName, dto.Quantity, unitPrice)
}
