package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medcourier/internal/core/application/usecases/commands"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/core/domain/model/rider"
	"medcourier/internal/pkg/errs"
)

func newAssignFixture(t *testing.T) (commands.AssignRiderCommand, *order.Order, *rider.Rider) {
	t.Helper()
	hospitalID := kernel.NewUUID()
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), hospitalID,
		order.Urgent, 4.2, time.Now().UTC())
	require.NoError(t, err)
	assignee := testRider(t, kernel.NewUUID(), hospitalID, rider.Available)

	cmd, err := commands.NewAssignRiderCommand(testOrder.ID(), assignee.ID())
	require.NoError(t, err)
	return cmd, testOrder, assignee
}

func TestAssignRiderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, testOrder, assignee := newAssignFixture(t)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		riderRepo.On("Get", ctx, assignee.ID()).Return(assignee, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignRiderCommandHandler(factory, publisher)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Assigned, testOrder.Status())
	assert.Equal(t, rider.Busy, assignee.Availability())
	orderRepo.AssertExpectations(t)
	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAssignRiderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.AssignRiderCommand{} // not constructed properly

	factory := new(MockAssignUoWFactory)
	handler := commands.NewAssignRiderCommandHandler(factory, new(MockEventPublisher))
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignRiderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignRiderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, testOrder, _ := newAssignFixture(t)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("order", testOrder.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignRiderCommandHandler(factory, new(MockEventPublisher))
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignRiderCommandHandler_Handle_BusyRider(t *testing.T) {
	ctx := context.Background()
	hospitalID := kernel.NewUUID()
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), hospitalID,
		order.Emergency, 4.2, time.Now().UTC())
	require.NoError(t, err)
	busyRider := testRider(t, kernel.NewUUID(), hospitalID, rider.Busy)

	cmd, err := commands.NewAssignRiderCommand(testOrder.ID(), busyRider.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		riderRepo.On("Get", ctx, busyRider.ID()).Return(busyRider, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignRiderCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Equal(t, order.PendingRiderAssignment, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignRiderCommandHandler_Handle_UnapprovedRider(t *testing.T) {
	ctx := context.Background()
	hospitalID := kernel.NewUUID()
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), hospitalID,
		order.Routine, 4.2, time.Now().UTC())
	require.NoError(t, err)

	// Approved for a different hospital only
	stranger := testRider(t, kernel.NewUUID(), kernel.NewUUID(), rider.Available)

	cmd, err := commands.NewAssignRiderCommand(testOrder.ID(), stranger.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		riderRepo.On("Get", ctx, stranger.ID()).Return(stranger, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignRiderCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthorization)
	assert.Equal(t, rider.Available, stranger.Availability())
}

func TestAssignRiderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := context.Background()
	cmd, testOrder, assignee := newAssignFixture(t)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		riderRepo.On("Get", ctx, assignee.ID()).Return(assignee, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignRiderCommandHandler(factory, new(MockEventPublisher))
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}

func TestAssignRiderCommandHandler_Handle_PublishFailureDoesNotFail(t *testing.T) {
	ctx := context.Background()
	cmd, testOrder, assignee := newAssignFixture(t)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		riderRepo.On("Get", ctx, assignee.ID()).Return(assignee, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).
		Return(errors.New("broker unreachable")).Once()

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignRiderCommandHandler(factory, publisher)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err, "Publish failure must not roll back the assignment")
	publisher.AssertExpectations(t)
}
