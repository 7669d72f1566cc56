package commands_test

import (
	"context"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should delete an existing order", func(t *testing.T) {
		stored := storedOrder(t, order.Pending)
		cmd, err := commands.NewDeleteOrderCommand(stored.ID())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("OrderRepository").Return(repo)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("GetByOrderID", ctx, stored.ID()).Return(stored, nil).Once(),
			repo.On("DeleteByOrderID", ctx, stored.ID()).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewDeleteOrderCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should surface a missing order without deleting", func(t *testing.T) {
		stored := storedOrder(t, order.Pending)
		cmd, err := commands.NewDeleteOrderCommand(stored.ID())
		require.NoError(t, err)

		notFound := errs.NewObjectNotFoundError("orderId", stored.ID().String())
		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("OrderRepository").Return(repo)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("GetByOrderID", ctx, stored.ID()).Return(nil, notFound).Once()

		handler := commands.NewDeleteOrderCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "DeleteByOrderID", ctx, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
