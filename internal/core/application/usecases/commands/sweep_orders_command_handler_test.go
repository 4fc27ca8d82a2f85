package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodbank/internal/core/application/usecases/commands"
	"foodbank/internal/core/domain/model/order"
)

func TestNewSweepOrdersCommand(t *testing.T) {
	cmd, err := commands.NewSweepOrdersCommand()

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())

	var zero commands.SweepOrdersCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrSweepOrdersCommandIsNotConstructed)
}

func TestSweepOrdersCommandHandler_Handle(t *testing.T) {
	cmd, err := commands.NewSweepOrdersCommand()
	require.NoError(t, err)

	t.Run("should advance due orders and leave the rest", func(t *testing.T) {
		ctx := t.Context()
		pastDue := testPendingOrder(t, "Community Fridge", fixedNow.Add(-2*time.Hour))
		nearPickup := testPendingOrder(t, "Other Pantry", fixedNow.Add(48*time.Hour))
		farOut := testPendingOrder(t, "Hope Kitchen", fixedNow.Add(10*24*time.Hour))

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("GetAllActive", ctx).Return([]*order.Order{pastDue, nearPickup, farOut}, nil).Once()
		orderRepo.On("Update", ctx, pastDue).Return(nil).Once()
		orderRepo.On("Update", ctx, nearPickup).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewSweepOrdersCommandHandler(factory, testClock)
		advanced, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, advanced)
		assert.Equal(t, order.Completed, pastDue.Status())
		assert.Equal(t, order.Released, nearPickup.Status())
		assert.Equal(t, order.Pending, farOut.Status())
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should report zero when nothing is due", func(t *testing.T) {
		ctx := t.Context()
		farOut := testPendingOrder(t, "Community Fridge", fixedNow.Add(10*24*time.Hour))

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("GetAllActive", ctx).Return([]*order.Order{farOut}, nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewSweepOrdersCommandHandler(factory, testClock)
		advanced, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 0, advanced)
		orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	})

	t.Run("should stop on the first failed update", func(t *testing.T) {
		ctx := t.Context()
		pastDue := testPendingOrder(t, "Community Fridge", fixedNow.Add(-2*time.Hour))

		updateErr := errors.New("connection reset")
		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("GetAllActive", ctx).Return([]*order.Order{pastDue}, nil).Once()
		orderRepo.On("Update", ctx, pastDue).Return(updateErr).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewSweepOrdersCommandHandler(factory, testClock)
		_, err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		require.ErrorIs(t, err, updateErr)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
