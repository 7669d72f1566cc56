package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles item and note updates on pending orders.
// An order that has moved past PENDING rejects the update regardless of the
// payload.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, verifies it is still pending, applies the
// requested changes, and persists the refreshed aggregate. Either the whole
// updated order is saved or nothing is.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if existing.Status() != order.Pending {
		return nil, order.NewIllegalOrderStateError(existing.Status())
	}

	if notes := cmd.Notes(); notes != nil {
		if err = existing.UpdateNotes(*notes); err != nil {
			return nil, err
		}
	}

	if items := cmd.Items(); len(items) > 0 {
		if err = existing.ReplaceItems(items); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Save(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
