package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to change a pending order's items
// and/or notes. Both payloads are optional: a nil notes pointer leaves the
// annotation untouched, an empty item list leaves the lines untouched.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []order.Item
	notes   *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order.
// When item specs are provided, every line must be valid; an empty spec
// slice means "do not touch the items".
func NewUpdateOrderCommand(orderID kernel.UUID, items []ItemSpec, notes *string) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := updateCommand.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	if len(items) > 0 {
		if err := updateCommand.setItems(items); err != nil {
			return UpdateOrderCommand{}, err
		}
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the business identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement lines, or nil when the items are unchanged.
func (c UpdateOrderCommand) Items() []order.Item {
	return c.items
}

// Notes returns the replacement annotation, or nil when unchanged.
func (c UpdateOrderCommand) Notes() *string {
	return c.notes
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setItems(specs []ItemSpec) error {
	items := make([]order.Item, 0, len(specs))
	for _, spec := range specs {
		item, err := order.NewItem(spec.ProductCode, spec.ProductName, spec.Quantity, spec.UnitPrice)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}
