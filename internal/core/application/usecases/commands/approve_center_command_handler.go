package commands

import (
	"context"
	"time"
)

// ApproveCenterCommandHandler applies scoped approval decisions to centers.
// The decision only succeeds while that scope is pending; a concurrent
// decision on the same scope loses the version check and surfaces as a
// state conflict, never a silent overwrite.
type ApproveCenterCommandHandler struct {
	uowFactory CenterUoWFactory
}

// NewApproveCenterCommandHandler creates a handler for center approvals.
func NewApproveCenterCommandHandler(uowFactory CenterUoWFactory) ApproveCenterCommandHandler {
	return ApproveCenterCommandHandler{uowFactory: uowFactory}
}

// Handle stamps the approver and timestamp on the targeted scope.
func (h ApproveCenterCommandHandler) Handle(ctx context.Context, command ApproveCenterCommand) error {
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

	centerRepo := uow.CenterRepository()
	aggregate, err := centerRepo.Get(ctx, command.CenterID())
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

	if err = centerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
