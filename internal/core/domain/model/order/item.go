package order

import (
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = fmt.Errorf("item must be created via NewItem or RestoreItem")

// Item is a value object owned exclusively by an Order: one product line
// with its quantity and prices. The product reference is opaque; it is not
// validated against any catalog.
//
// The subtotal is computed once at construction as unitPrice × quantity and
// never mutated independently.
type Item struct {
	id          kernel.UUID
	productCode string
	productName string
	quantity    int
	unitPrice   kernel.Money
	subtotal    kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line with a generated identifier.
// Quantity and unit price must be strictly positive and the product
// reference must be present.
func NewItem(productCode, productName string, quantity int, unitPrice kernel.Money) (Item, error) {
	if productCode == "" {
		return Item{}, NewInvalidItemsError("product code is required")
	}
	if productName == "" {
		return Item{}, NewInvalidItemsError("product name is required")
	}
	if quantity <= 0 {
		return Item{}, NewInvalidItemsError(fmt.Sprintf("quantity %d is not greater than 0", quantity))
	}
	if err := unitPrice.Validate(); err != nil {
		return Item{}, NewInvalidItemsError("unit price is required")
	}
	if !unitPrice.IsPositive() {
		return Item{}, NewInvalidItemsError(fmt.Sprintf("unit price %s is not greater than 0", unitPrice))
	}

	return Item{
		id:          kernel.NewUUID(),
		productCode: productCode,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		subtotal:    unitPrice.MultiplyBy(quantity),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem rehydrates an item from persistence, keeping its stored
// identifier. The subtotal is recomputed from quantity and unit price so
// the derived-value invariant holds regardless of what was stored.
func RestoreItem(id kernel.UUID, productCode, productName string, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}

	item, err := NewItem(productCode, productName, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}

	item.id = id
	return item, nil
}

// ID returns the item's identifier, unique within its order.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductCode returns the opaque product reference.
func (i Item) ProductCode() string {
	return i.productCode
}

// ProductName returns the display name captured at order time.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns unitPrice × quantity, fixed at construction.
func (i Item) Subtotal() kernel.Money {
	return i.subtotal
}

// Validate returns ErrItemIsNotConstructed for the zero value.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
