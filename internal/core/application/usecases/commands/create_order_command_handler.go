package commands

import (
	"context"
	"fmt"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler handles order creation. It is the only handler
// that talks to the customer validation gateway: an order may be created
// only for a customer the remote authority confirms to exist.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(gateway, uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s created", created.Number())
type CreateOrderCommandHandler struct {
	gateway    ports.CustomerValidationGateway
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires the customer validation gateway and an OrderUoWFactory for
// transactional persistence.
func NewCreateOrderCommandHandler(
	gateway ports.CustomerValidationGateway,
	uowFactory OrderUoWFactory,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		gateway:    gateway,
		uowFactory: uowFactory,
	}
}

// Handle validates the referenced customer, builds the order aggregate, and
// persists it. Returns the persisted order in PENDING status.
//
// A gateway availability failure is propagated unmodified: unavailability is
// never downgraded to "customer not found", and nothing is written in that
// case. Only an authoritative negative verdict produces ErrCustomerNotFound.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	exists, err := h.gateway.CustomerExists(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("cannot create order for customer %s: %w",
			cmd.CustomerID(), ports.ErrCustomerNotFound)
	}

	newOrder, err := order.NewOrder(cmd.CustomerID(), cmd.Items(), cmd.Notes())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Save(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
