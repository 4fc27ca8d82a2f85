package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodbank/internal/core/application/usecases/commands"
	"foodbank/internal/core/domain/model/order"
	"foodbank/internal/pkg/errs"
)

func TestApproveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pending := testPendingOrder(t, "Community Fridge", validPickup)
	cmd, err := commands.NewApproveOrderCommand(adminActor(t), pending.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		orderRepo.On("Update", ctx, pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyApproved", ctx, pending).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveOrderCommandHandler(factory, notifier)
	warning, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, order.Approved, pending.Status())
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_Handle_NotificationFailureIsWarning(t *testing.T) {
	ctx := t.Context()
	pending := testPendingOrder(t, "Community Fridge", validPickup)
	cmd, err := commands.NewApproveOrderCommand(adminActor(t), pending.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once()
	orderRepo.On("Update", ctx, pending).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	notifier.On("NotifyApproved", ctx, pending).Return(errors.New("smtp connection refused")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveOrderCommandHandler(factory, notifier)
	warning, err := handler.Handle(ctx, cmd)

	// The approval is committed; the delivery failure must not fail the call.
	require.NoError(t, err)
	assert.Contains(t, warning, "notification failed")
	assert.Contains(t, warning, "smtp connection refused")
	assert.Equal(t, order.Approved, pending.Status())
}

func TestApproveOrderCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewApproveOrderCommand(partnerActor(t, "Community Fridge"), testPendingOrder(t, "Community Fridge", validPickup).ID())
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	handler := commands.NewApproveOrderCommandHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrActionIsForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestApproveOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	missing := testPendingOrder(t, "Community Fridge", validPickup).ID()
	cmd, err := commands.NewApproveOrderCommand(adminActor(t), missing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("order", missing.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveOrderCommandHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestApproveOrderCommandHandler_Handle_InvalidState(t *testing.T) {
	ctx := t.Context()
	decided := testPendingOrder(t, "Community Fridge", validPickup)
	require.NoError(t, decided.Approve())
	cmd, err := commands.NewApproveOrderCommand(adminActor(t), decided.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, decided.ID()).Return(decided, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveOrderCommandHandler(factory, notifier)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyApproved", ctx, mock.Anything)
}
