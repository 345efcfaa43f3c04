package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medcourier/internal/core/application/usecases/commands"
	"medcourier/internal/core/domain/model/handover"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/core/domain/model/qr"
	"medcourier/internal/pkg/errs"
)

func handoverPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(13.05, 80.25)
	require.NoError(t, err)
	return point
}

// pickedUpOrder builds an order after pickup, carried by riderID.
func pickedUpOrder(t *testing.T, riderID kernel.UUID) *order.Order {
	t.Helper()
	createdAt := time.Now().UTC().Add(-20 * time.Minute)
	assignedAt := createdAt.Add(2 * time.Minute)
	pickedUpAt := createdAt.Add(10 * time.Minute)
	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:               kernel.NewUUID(),
		CenterID:         kernel.NewUUID(),
		HospitalID:       kernel.NewUUID(),
		Urgency:          order.Urgent,
		Status:           order.PickedUp,
		RiderID:          &riderID,
		CreatedAt:        createdAt,
		AssignedAt:       &assignedAt,
		PickedUpAt:       &pickedUpAt,
		PickupDistanceKm: 4.2,
		Version:          3,
	})
	require.NoError(t, err)
	return o
}

func TestInitiateHandoverCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	fromRiderID := kernel.NewUUID()
	toRiderID := kernel.NewUUID()
	testOrder := pickedUpOrder(t, fromRiderID)

	cmd, err := commands.NewInitiateHandoverCommand(testOrder.ID(), fromRiderID,
		toRiderID, "vehicle breakdown", handoverPoint(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	handoverRepo := new(MockHandoverRepository)
	qrRepo := new(MockQRRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("HandoverRepository").Return(handoverRepo).Once(),
		handoverRepo.On("Add", ctx, mock.AnythingOfType("*handover.Handover")).Return(nil).Once(),
		uow.On("QRRepository").Return(qrRepo).Once(),
		qrRepo.On("AddCode", ctx, mock.AnythingOfType("qr.Code")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHandoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewInitiateHandoverCommandHandler(factory, testQRTTL)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// The opened handover targets the relieving rider
	transfer := handoverRepo.Calls[0].Arguments[1].(*handover.Handover)
	assert.Equal(t, handover.Initiated, transfer.Status())
	assert.True(t, transfer.NewRiderID().IsEqual(toRiderID))

	// The issued code is a handover code bound to this transfer
	code := qrRepo.Calls[0].Arguments[1].(qr.Code)
	assert.Equal(t, qr.Handover, code.Kind())
	assert.True(t, code.PartyID().IsEqual(transfer.ID()))
	assert.True(t, code.OrderID().IsEqual(testOrder.ID()))

	// The order links its active handover
	require.NotNil(t, testOrder.Handover())
	assert.True(t, testOrder.Handover().IsEqual(transfer.ID()))
	uow.AssertExpectations(t)
}

func TestInitiateHandoverCommandHandler_Handle_NotTheCarrier(t *testing.T) {
	ctx := context.Background()
	carrierID := kernel.NewUUID()
	impostorID := kernel.NewUUID()
	testOrder := pickedUpOrder(t, carrierID)

	cmd, err := commands.NewInitiateHandoverCommand(testOrder.ID(), impostorID,
		kernel.NewUUID(), "vehicle breakdown", handoverPoint(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHandoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewInitiateHandoverCommandHandler(factory, testQRTTL)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthorization)
	assert.Nil(t, testOrder.Handover())
}

func TestInitiateHandoverCommandHandler_Handle_SecondActiveHandover(t *testing.T) {
	ctx := context.Background()
	fromRiderID := kernel.NewUUID()
	testOrder := pickedUpOrder(t, fromRiderID)
	require.NoError(t, testOrder.AttachHandover(kernel.NewUUID()))

	cmd, err := commands.NewInitiateHandoverCommand(testOrder.ID(), fromRiderID,
		kernel.NewUUID(), "second breakdown", handoverPoint(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHandoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewInitiateHandoverCommandHandler(factory, testQRTTL)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict, "Only one handover may be active per order")
}

func TestInitiateHandoverCommandHandler_Handle_SameRider(t *testing.T) {
	ctx := context.Background()
	fromRiderID := kernel.NewUUID()
	testOrder := pickedUpOrder(t, fromRiderID)

	cmd, err := commands.NewInitiateHandoverCommand(testOrder.ID(), fromRiderID,
		fromRiderID, "vehicle breakdown", handoverPoint(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHandoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewInitiateHandoverCommandHandler(factory, testQRTTL)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err, "A rider cannot hand over to themselves")
}
