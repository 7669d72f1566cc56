package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// ItemSpec describes one requested product line before it becomes a domain
// item: the opaque product reference, a display name, a positive quantity,
// and a positive unit price.
type ItemSpec struct {
	ProductCode string
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
}

// CreateOrderCommand represents a request to create a new order for an
// existing customer. The item specs are converted into domain items during
// construction, so an invalid line is rejected before the handler runs.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("100.00")
//	cmd, err := NewCreateOrderCommand("c1", []ItemSpec{{
//	    ProductCode: "SKU-1", ProductName: "Keyboard", Quantity: 2, UnitPrice: price,
//	}}, "leave at the door")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	items      []order.Item
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The customer id must be present (its format is deliberately not checked;
// only existence is validated, by the handler through the gateway) and the
// item list must contain at least one valid line.
func NewCreateOrderCommand(customerID string, items []ItemSpec, notes string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.notes = notes
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the opaque customer reference.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns the validated domain items built from the specs.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Notes returns the optional free-text annotation.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(specs []ItemSpec) error {
	if len(specs) == 0 {
		return order.NewInvalidItemsError("order must contain at least one item")
	}

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
