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

func TestUpdateOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should replace items and notes on a pending order", func(t *testing.T) {
		stored := storedOrder(t, order.Pending)
		notes := "leave at the door"
		cmd, err := commands.NewUpdateOrderCommand(stored.ID(), testItemSpecs(t), &notes)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("OrderRepository").Return(repo)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("GetByOrderID", ctx, stored.ID()).Return(stored, nil).Once(),
			repo.On("Save", ctx, stored).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewUpdateOrderCommandHandler(factory)
		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "leave at the door", updated.Notes())
		assert.Len(t, updated.Items(), 2)
		assert.True(t, updated.TotalAmount().IsEqual(mustMoney(t, "250.00")))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should leave items untouched when only notes change", func(t *testing.T) {
		stored := storedOrder(t, order.Pending)
		notes := "new note"
		cmd, err := commands.NewUpdateOrderCommand(stored.ID(), nil, &notes)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("OrderRepository").Return(repo)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("GetByOrderID", ctx, stored.ID()).Return(stored, nil).Once()
		repo.On("Save", ctx, stored).Return(nil).Once()

		handler := commands.NewUpdateOrderCommandHandler(factory)
		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "new note", updated.Notes())
		assert.Len(t, updated.Items(), 1)
	})

	t.Run("should reject updates once the order left pending", func(t *testing.T) {
		stored := storedOrder(t, order.Confirmed)
		notes := "too late"
		cmd, err := commands.NewUpdateOrderCommand(stored.ID(), nil, &notes)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("OrderRepository").Return(repo)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("GetByOrderID", ctx, stored.ID()).Return(stored, nil).Once()

		handler := commands.NewUpdateOrderCommandHandler(factory)
		updated, err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, order.ErrIllegalOrderState)
		repo.AssertNotCalled(t, "Save", ctx, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("should surface a missing order", func(t *testing.T) {
		stored := storedOrder(t, order.Pending)
		cmd, err := commands.NewUpdateOrderCommand(stored.ID(), testItemSpecs(t), nil)
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

		handler := commands.NewUpdateOrderCommandHandler(factory)
		updated, err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
