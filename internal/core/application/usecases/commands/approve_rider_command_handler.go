package commands

import (
	"context"
	"time"
)

// ApproveRiderCommandHandler applies scoped approval decisions to riders.
// The decision only succeeds while that scope is pending; a concurrent
// decision on the same scope loses the version check and surfaces as a
// state conflict, never a silent overwrite.
type ApproveRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewApproveRiderCommandHandler creates a handler for rider approvals.
func NewApproveRiderCommandHandler(uowFactory RiderUoWFactory) ApproveRiderCommandHandler {
	return ApproveRiderCommandHandler{uowFactory: uowFactory}
}

// Handle stamps the approver and timestamp on the targeted scope.
func (h ApproveRiderCommandHandler) Handle(ctx context.Context, command ApproveRiderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	aggregate, err := riderRepo.Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if hospitalID := command.HospitalID(); hospitalID != nil {
		err = aggregate.Approval().ApproveByHospital(*hospitalID, command.ApproverID(), now)
	} else {
		err = aggregate.Approval().ApproveByHQ(command.ApproverID(), now)
	}
	if err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
