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
	"medcourier/internal/pkg/errs"
)

func initiatedHandover(t *testing.T, originalRiderID, newRiderID kernel.UUID) *handover.Handover {
	t.Helper()
	point, err := kernel.NewGeoPoint(13.05, 80.25)
	require.NoError(t, err)
	transfer, err := handover.NewHandover(kernel.NewUUID(), kernel.NewUUID(),
		originalRiderID, newRiderID, "vehicle breakdown", point, time.Now().UTC())
	require.NoError(t, err)
	return transfer
}

func TestAcceptHandoverCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	newRiderID := kernel.NewUUID()
	transfer := initiatedHandover(t, kernel.NewUUID(), newRiderID)

	cmd, err := commands.NewAcceptHandoverCommand(transfer.ID(), newRiderID)
	require.NoError(t, err)

	handoverRepo := new(MockHandoverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HandoverRepository").Return(handoverRepo).Once(),
		handoverRepo.On("Get", ctx, transfer.ID()).Return(transfer, nil).Once(),
		handoverRepo.On("Update", ctx, mock.AnythingOfType("*handover.Handover")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHandoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptHandoverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, handover.Accepted, transfer.Status())
	require.NotNil(t, transfer.AcceptedAt())
	handoverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptHandoverCommandHandler_Handle_WrongRider(t *testing.T) {
	ctx := context.Background()
	transfer := initiatedHandover(t, kernel.NewUUID(), kernel.NewUUID())
	someoneElse := kernel.NewUUID()

	cmd, err := commands.NewAcceptHandoverCommand(transfer.ID(), someoneElse)
	require.NoError(t, err)

	handoverRepo := new(MockHandoverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HandoverRepository").Return(handoverRepo).Once(),
		handoverRepo.On("Get", ctx, transfer.ID()).Return(transfer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHandoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptHandoverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthorization)
	assert.Equal(t, handover.Initiated, transfer.Status())
	handoverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAcceptHandoverCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := context.Background()
	newRiderID := kernel.NewUUID()
	transfer := initiatedHandover(t, kernel.NewUUID(), newRiderID)
	require.NoError(t, transfer.Cancel("rider withdrew", time.Now().UTC()))

	cmd, err := commands.NewAcceptHandoverCommand(transfer.ID(), newRiderID)
	require.NoError(t, err)

	handoverRepo := new(MockHandoverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HandoverRepository").Return(handoverRepo).Once(),
		handoverRepo.On("Get", ctx, transfer.ID()).Return(transfer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHandoverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptHandoverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
}
