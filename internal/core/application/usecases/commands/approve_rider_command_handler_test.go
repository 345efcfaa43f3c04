package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medcourier/internal/core/application/usecases/commands"
	"medcourier/internal/core/domain/model/approval"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/rider"
)

func pendingRider(t *testing.T, hospitalID kernel.UUID) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), "Sam Ortiz", "+15550100", hospitalID)
	require.NoError(t, err)
	return r
}

func TestApproveRiderCommandHandler_Handle_HospitalScope(t *testing.T) {
	ctx := context.Background()
	hospitalID := kernel.NewUUID()
	aggregate := pendingRider(t, hospitalID)

	cmd, err := commands.NewApproveRiderCommand(aggregate.ID(), &hospitalID, kernel.NewUUID())
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

	handler := commands.NewApproveRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	status, err := aggregate.Approval().StatusForHospital(hospitalID)
	require.NoError(t, err)
	assert.Equal(t, approval.Approved, status)
	assert.Equal(t, approval.Pending, aggregate.Approval().HQStatus(),
		"HQ scope is untouched by a hospital decision")
	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApproveRiderCommandHandler_Handle_HQScope(t *testing.T) {
	ctx := context.Background()
	hospitalID := kernel.NewUUID()
	aggregate := pendingRider(t, hospitalID)

	cmd, err := commands.NewApproveRiderCommand(aggregate.ID(), nil, kernel.NewUUID())
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

	handler := commands.NewApproveRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, approval.Approved, aggregate.Approval().HQStatus())
}

func TestApproveRiderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.ApproveRiderCommand{} // not constructed properly

	factory := new(MockRiderUoWFactory)
	handler := commands.NewApproveRiderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrApproveRiderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
