package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medcourier/internal/core/application/usecases/commands"
	"medcourier/internal/core/domain/model/approval"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/pkg/errs"
)

func TestResubmitRiderCommandHandler_Handle_ReopensRejectedScope(t *testing.T) {
	ctx := context.Background()
	hospitalID := kernel.NewUUID()
	aggregate := pendingRider(t, hospitalID)
	scope, err := approval.HospitalScope(hospitalID)
	require.NoError(t, err)
	require.NoError(t, aggregate.Approval().Reject(scope, kernel.NewUUID(),
		"incomplete documents", time.Now().UTC()))

	cmd, err := commands.NewResubmitRiderCommand(aggregate.ID(), &hospitalID, kernel.NewUUID())
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResubmitRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	status, err := aggregate.Approval().StatusForHospital(hospitalID)
	require.NoError(t, err)
	assert.Equal(t, approval.Pending, status, "Resubmission reopens the scope")
	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResubmitRiderCommandHandler_Handle_PendingScopeConflicts(t *testing.T) {
	ctx := context.Background()
	hospitalID := kernel.NewUUID()
	aggregate := pendingRider(t, hospitalID)

	cmd, err := commands.NewResubmitRiderCommand(aggregate.ID(), &hospitalID, kernel.NewUUID())
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResubmitRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
	riderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
