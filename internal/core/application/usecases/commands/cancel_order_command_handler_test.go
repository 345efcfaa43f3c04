package commands_test

import (
	"context"
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

func TestCancelOrderCommandHandler_Handle_FreesAssignedRider(t *testing.T) {
	ctx := context.Background()
	hospitalID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	testOrder := testAssignedOrder(t, kernel.NewUUID(), hospitalID, riderID)
	carrier := testRider(t, riderID, hospitalID, rider.Busy)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), "sample spoiled at center")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, riderID).Return(carrier, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	assert.Equal(t, "sample spoiled at center", testOrder.CancelReason())
	assert.Equal(t, rider.Available, carrier.Availability())
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_UnassignedOrder(t *testing.T) {
	ctx := context.Background()
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Routine, 4.2, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), "duplicate registration")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	uow.AssertNotCalled(t, "RiderRepository")
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrder(t *testing.T) {
	ctx := context.Background()
	riderID := kernel.NewUUID()
	createdAt := time.Now().UTC().Add(-time.Hour)
	assignedAt := createdAt.Add(2 * time.Minute)
	pickedUpAt := createdAt.Add(10 * time.Minute)
	inTransitAt := createdAt.Add(11 * time.Minute)
	deliveredAt := createdAt.Add(40 * time.Minute)

	testOrder, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:               kernel.NewUUID(),
		CenterID:         kernel.NewUUID(),
		HospitalID:       kernel.NewUUID(),
		Urgency:          order.Routine,
		Status:           order.Delivered,
		RiderID:          &riderID,
		CreatedAt:        createdAt,
		AssignedAt:       &assignedAt,
		PickedUpAt:       &pickedUpAt,
		InTransitAt:      &inTransitAt,
		DeliveredAt:      &deliveredAt,
		PickupDistanceKm: 4.2,
		ActualDistanceKm: 4.2,
		Version:          6,
	})
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), "too late")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict, "Terminal orders cannot be cancelled")
	assert.Equal(t, order.Delivered, testOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_EmptyReasonRejectedByCommand(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestStartTransitCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	riderID := kernel.NewUUID()
	testOrder := pickedUpOrder(t, riderID)

	cmd, err := commands.NewStartTransitCommand(testOrder.ID(), riderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartTransitCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InTransit, testOrder.Status())
	require.NotNil(t, testOrder.InTransitAt())
}

func TestStartTransitCommandHandler_Handle_NotTheAssignedRider(t *testing.T) {
	ctx := context.Background()
	carrierID := kernel.NewUUID()
	testOrder := pickedUpOrder(t, carrierID)

	cmd, err := commands.NewStartTransitCommand(testOrder.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartTransitCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthorization)
	assert.Equal(t, order.PickedUp, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
