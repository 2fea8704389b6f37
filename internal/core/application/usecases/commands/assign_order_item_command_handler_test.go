package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderitem"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignOrderItemCommandHandler_Handle(t *testing.T) {
	t.Run("should store the assignee and expected date", func(t *testing.T) {
		ctx := t.Context()
		at := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
		cmd, _ := commands.NewAssignOrderItemCommand(42, 9, &at)
		item := mustItem(t, 42, orderitem.Active, 10)

		itemRepo := new(MockOrderItemRepository)
		uow := new(MockOrderItemUoW)
		factory := new(MockOrderItemUoWFactory)
		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderItemRepository").Return(itemRepo).Once(),
			itemRepo.On("Get", ctx, kernel.ID(42)).Return(item, nil).Once(),
			itemRepo.On("Update", ctx, item).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewAssignOrderItemCommandHandler(factory)
		err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, item.AssigneeID())
		assert.Equal(t, kernel.ID(9), *item.AssigneeID())
		require.NotNil(t, item.ExpectedBy())
		assert.True(t, at.Equal(*item.ExpectedBy()))
		uow.AssertExpectations(t)
	})

	t.Run("should fail with not found for an unknown item", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewAssignOrderItemCommand(404, 9, nil)

		itemRepo := new(MockOrderItemRepository)
		uow := new(MockOrderItemUoW)
		factory := new(MockOrderItemUoWFactory)
		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderItemRepository").Return(itemRepo).Once(),
			itemRepo.On("Get", ctx, kernel.ID(404)).Return(nil, errs.NewObjectNotFoundError("orderItemID", 404)).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewAssignOrderItemCommandHandler(factory)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		itemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
